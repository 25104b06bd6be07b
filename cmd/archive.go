package cmd

import (
	"fmt"

	"github.com/iksnae/tempo/internal"
	"github.com/spf13/cobra"
)

var archiveTotals bool

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Mirror the session history into a SQLite database",
	Long: `Mirror the full session history into a SQLite database
(archive.db in the data directory) so it can be queried with ad-hoc SQL
or fed into other tooling. The JSON history stays the source of truth;
every run rebuilds the archive from it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}

		db, err := internal.OpenArchive(app.Paths.ArchiveFile)
		if err != nil {
			return err
		}
		defer db.Close()

		count, err := internal.SyncArchive(db, app.Store.Sessions())
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Archived %d session(s) to %s", count, app.Paths.ArchiveFile)))

		if archiveTotals {
			totals, err := internal.ArchiveTotals(db)
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(headerStyle.Render("📂 Archived totals"))
			printProjectTotals(totals, "Archive is empty.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().BoolVar(&archiveTotals, "totals", false, "Print per-project totals read back from the archive")
}
