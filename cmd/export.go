package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/tempo/internal"
	"github.com/iksnae/tempo/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportOut     string
	exportProject string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session history to a file",
	Long: `Export the session history to various formats (json, jsonl, yaml, md, csv).

By default the export goes to stdout; use --out to write a file. Use
--project to export a single project's sessions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		sessions := app.Store.Sessions()
		if exportProject != "" {
			sessions = app.Store.SessionsForProject(exportProject)
			if len(sessions) == 0 {
				return &internal.NotFoundError{Project: exportProject}
			}
		}

		if exportOut == "" {
			return exporter.Export(sessions, os.Stdout)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := exporter.Export(sessions, f); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Exported %d session(s) to %s", len(sessions), exportOut)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, yaml, md, csv)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportProject, "project", "p", "", "Export a single project's sessions")
}
