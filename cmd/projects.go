package cmd

import (
	"fmt"
	"time"

	"github.com/iksnae/tempo/internal"
	"github.com/spf13/cobra"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List all projects with accumulated time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("📂 Your Projects"))
		printProjectTotals(app.Store.ListProjects(),
			"No projects yet. Start working on one with 'work <project>'!")
		return nil
	},
}

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's work summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("📅 Today's Summary"))
		printProjectTotals(todayTotals(app.Store),
			"No sessions today yet. Get started with 'work <project>'!")
		return nil
	},
}

// todayTotals folds today's sessions into per-project totals.
func todayTotals(store *internal.Store) []internal.ProjectTotal {
	groups := store.SessionsOnDate(time.Now())

	totals := make([]internal.ProjectTotal, 0, len(groups))
	for _, g := range groups {
		pt := internal.ProjectTotal{Project: g.Project}
		for _, sess := range g.Sessions {
			pt.Total += sess.Duration()
		}
		totals = append(totals, pt)
	}
	return totals
}

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Show details and sessions for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		name := args[0]
		sessions := app.Store.SessionsForProject(name)
		if len(sessions) == 0 {
			return &internal.NotFoundError{Project: name}
		}

		printProjectDetail(name, sessions)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(projectCmd)
}
