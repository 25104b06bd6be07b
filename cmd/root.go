package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/tempo/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dataDir string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Track work and pomodoro sessions from your terminal",
	Long: `A minimalist time tracker for the terminal.

tempo tracks timed work and break sessions against named projects and
keeps the full history on disk, so you can ask where your time went.

Features:
  • Work timers tied to named projects, with optional descriptions
  • Pomodoro (25 min) and break (5/15 min) timers
  • Per-project totals and daily summaries
  • Session history export (json, jsonl, yaml, md, csv)
  • SQLite archive for ad-hoc SQL queries

Quick Start:
  tempo                         # Interactive mode
  tempo work myproject          # Start tracking a project
  tempo projects                # Where did the time go?

Running tempo without a subcommand starts interactive mode.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		return runInteractive(app)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Custom data directory (default: user config dir)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
