package cmd

import (
	"fmt"
	"time"

	"github.com/iksnae/tempo/internal"
	"github.com/spf13/cobra"
)

var (
	reportProject string
	reportDays    int
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show per-day totals over a recent window",
	Long: `Show a per-day breakdown of tracked time over the last N days
(default 7), optionally filtered to a single project.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		if reportDays <= 0 {
			return &internal.InvalidArgumentError{Arg: "days", Reason: "must be positive"}
		}

		if reportProject != "" {
			fmt.Println(headerStyle.Render(fmt.Sprintf("📈 Report: %s (last %d days)", reportProject, reportDays)))
		} else {
			fmt.Println(headerStyle.Render(fmt.Sprintf("📈 Report (last %d days)", reportDays)))
		}

		empty := true
		now := time.Now()
		for i := reportDays - 1; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)

			totals := dayTotals(app.Store, day, reportProject)
			if len(totals) == 0 {
				continue
			}
			empty = false

			fmt.Println(titleStyle.Render(day.Format("Mon 2006-01-02")))
			printProjectTotals(totals, "")
			fmt.Println()
		}

		if empty {
			fmt.Println(dimStyle.Render("Nothing tracked in this window."))
		}
		return nil
	},
}

// dayTotals folds one day's sessions into per-project totals, optionally
// filtered to a single project.
func dayTotals(store *internal.Store, day time.Time, project string) []internal.ProjectTotal {
	var totals []internal.ProjectTotal
	for _, g := range store.SessionsOnDate(day) {
		if project != "" && g.Project != project {
			continue
		}
		pt := internal.ProjectTotal{Project: g.Project}
		for _, sess := range g.Sessions {
			pt.Total += sess.Duration()
		}
		totals = append(totals, pt)
	}
	return totals
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportProject, "project", "p", "", "Filter by specific project")
	reportCmd.Flags().IntVarP(&reportDays, "days", "d", 7, "Number of days to include")
}
