package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/tempo/internal"
)

// JSONExporter exports the history as a pretty-printed JSON array
type JSONExporter struct{}

// Export writes sessions to w as JSON
func (e *JSONExporter) Export(sessions []internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(sessions)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
