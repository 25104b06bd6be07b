package cmd

import (
	"github.com/spf13/cobra"
)

// breakCmd represents the break command
var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Start a short break timer (default 5 minutes)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		res, err := app.Engine.StartBreak()
		if err != nil {
			return err
		}
		printStartResult(res)

		return runForeground(app)
	},
}

// longBreakCmd represents the long-break command
var longBreakCmd = &cobra.Command{
	Use:   "long-break",
	Short: "Start a long break timer (default 15 minutes)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		res, err := app.Engine.StartLongBreak()
		if err != nil {
			return err
		}
		printStartResult(res)

		return runForeground(app)
	},
}

func init() {
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(longBreakCmd)
}
