package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// workCmd represents the work command
var workCmd = &cobra.Command{
	Use:   "work <project> [description...]",
	Short: "Start a work timer for a project",
	Long: `Start an open-ended work timer tied to a named project, with an
optional free-text description of what you're doing.

The timer runs until you stop it (Ctrl+C here, or 'stop' in interactive
mode). The completed session is saved to the history on stop.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		project := args[0]
		description := strings.Join(args[1:], " ")

		res, err := app.Engine.StartWork(project, description)
		if err != nil {
			return err
		}
		printStartResult(res)

		return runForeground(app)
	},
}

func init() {
	rootCmd.AddCommand(workCmd)
}
