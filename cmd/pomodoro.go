package cmd

import (
	"github.com/spf13/cobra"
)

// pomodoroCmd represents the pomodoro command
var pomodoroCmd = &cobra.Command{
	Use:     "pomodoro",
	Aliases: []string{"pomo"},
	Short:   "Start a pomodoro timer (default 25 minutes)",
	Long: `Start a pomodoro timer. The target length comes from the config file
(25 minutes by default) and is display-only: the timer keeps running past
it until you stop it, so you can finish early or run over.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		res, err := app.Engine.StartPomodoro()
		if err != nil {
			return err
		}
		printStartResult(res)

		return runForeground(app)
	},
}

func init() {
	rootCmd.AddCommand(pomodoroCmd)
}
