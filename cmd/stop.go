package cmd

import (
	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current timer and save the session",
	Long: `Stop the running timer and save the completed session.

Timers only live as long as the process that started them, so this is
mainly useful in interactive mode; one-shot timers are stopped with
Ctrl+C instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		sess, err := app.Engine.Stop()
		if err != nil {
			return err
		}
		printStopped(sess)
		return nil
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"s"},
	Short:   "Show the current timer status",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		status, err := app.Engine.Status()
		if err != nil {
			return err
		}
		printStatus(status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
}
