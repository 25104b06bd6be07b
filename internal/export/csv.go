package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/iksnae/tempo/internal"
)

// CSVExporter exports the history as CSV, one row per session
type CSVExporter struct{}

// Export writes sessions to w as CSV with a header row
func (e *CSVExporter) Export(sessions []internal.Session, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"project", "description", "kind", "start", "end", "duration_seconds"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, sess := range sessions {
		record := []string{
			sess.Project,
			sess.Description,
			string(sess.Kind),
			sess.Start.Format(time.RFC3339),
			sess.End.Format(time.RFC3339),
			strconv.FormatFloat(sess.Duration().Seconds(), 'f', 0, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}
