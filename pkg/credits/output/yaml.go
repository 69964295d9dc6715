package output

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Org    yamlMeta          `yaml:"org"`
	Points []SeriesPoint     `yaml:"points"`
	Rows   []types.LedgerRow `yaml:"rows"`
	Alerts []types.Alert     `yaml:"alerts,omitempty"`
}

// yamlMeta represents report metadata in YAML output.
type yamlMeta struct {
	OrgID        string  `yaml:"org_id"`
	Period       string  `yaml:"period"`
	TotalCredits float64 `yaml:"total_credits"`
	AlertStatus  string  `yaml:"alert_status"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := yamlOutput{
		Org: yamlMeta{
			OrgID:        r.OrgID,
			Period:       r.Period,
			TotalCredits: r.TotalCredits(),
			AlertStatus:  r.AlertStatus,
		},
		Points: r.Points,
		Rows:   r.Rows,
		Alerts: r.Alerts,
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
