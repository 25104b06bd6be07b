package export

import (
	"io"

	"github.com/iksnae/tempo/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the history in YAML format
type YAMLExporter struct{}

type yamlSession struct {
	Project     string `yaml:"project"`
	Description string `yaml:"description,omitempty"`
	Kind        string `yaml:"kind"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Duration    string `yaml:"duration"`
}

// Export writes sessions to w as a YAML document
func (e *YAMLExporter) Export(sessions []internal.Session, w io.Writer) error {
	out := make([]yamlSession, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, yamlSession{
			Project:     sess.Project,
			Description: sess.Description,
			Kind:        string(sess.Kind),
			Start:       sess.Start.Format("2006-01-02T15:04:05Z07:00"),
			End:         sess.End.Format("2006-01-02T15:04:05Z07:00"),
			Duration:    sess.Duration().String(),
		})
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(out)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
