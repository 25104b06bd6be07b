package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteProjectCmd represents the delete-project command
var deleteProjectCmd = &cobra.Command{
	Use:   "delete-project <name>",
	Short: "Delete all sessions for a project (irreversible)",
	Long: `Delete every session recorded for a project. There is no undo;
pass --yes to skip the confirmation prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		name := args[0]
		if !deleteYes {
			fmt.Println(warningStyle.Render(fmt.Sprintf("⚠️  About to delete all sessions for %q. This is irreversible!", name)))
			if !confirm(os.Stdin, "Confirm (y/N): ") {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		deleted, err := app.Store.DeleteProject(name)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Deleted %d session(s) for %q.", deleted, name)))
		return nil
	},
}

// confirm reads one line and reports whether it was an explicit yes.
func confirm(r *os.File, prompt string) bool {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(deleteProjectCmd)
	deleteProjectCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
