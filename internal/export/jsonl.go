package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/tempo/internal"
)

// JSONLExporter exports the history as JSONL (one session per line)
type JSONLExporter struct{}

// Export writes sessions to w, one JSON object per line
func (e *JSONLExporter) Export(sessions []internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, sess := range sessions {
		if err := enc.Encode(sess); err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
