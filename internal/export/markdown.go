package export

import (
	"fmt"
	"io"
	"time"

	"github.com/iksnae/tempo/internal"
)

// MarkdownExporter exports the history as a Markdown report grouped by
// project
type MarkdownExporter struct{}

// Export writes sessions to w as Markdown
func (e *MarkdownExporter) Export(sessions []internal.Session, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Time Tracking History\n\n")
	_, _ = fmt.Fprintf(w, "**Sessions:** %d\n\n", len(sessions))

	if len(sessions) == 0 {
		return nil
	}

	// Group by project, keeping first-appearance order
	index := make(map[string]int)
	var projects []string
	grouped := make(map[string][]internal.Session)
	for _, sess := range sessions {
		if _, ok := index[sess.Project]; !ok {
			index[sess.Project] = len(projects)
			projects = append(projects, sess.Project)
		}
		grouped[sess.Project] = append(grouped[sess.Project], sess)
	}

	for _, project := range projects {
		var total time.Duration
		for _, sess := range grouped[project] {
			total += sess.Duration()
		}

		_, _ = fmt.Fprintf(w, "## %s\n\n", project)
		_, _ = fmt.Fprintf(w, "**Total:** %s\n\n", internal.FormatTotal(total))

		_, _ = fmt.Fprintf(w, "| Start | End | Kind | Duration | Description |\n")
		_, _ = fmt.Fprintf(w, "|-------|-----|------|----------|-------------|\n")
		for _, sess := range grouped[project] {
			desc := sess.Description
			if desc == "" {
				desc = "—"
			}
			_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				sess.Start.Format("2006-01-02 15:04"),
				sess.End.Format("2006-01-02 15:04"),
				sess.Kind,
				internal.FormatClock(sess.Duration()),
				desc)
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
