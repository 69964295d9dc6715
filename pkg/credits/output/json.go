package output

import (
	"bytes"
	"encoding/json"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Org    jsonMeta          `json:"org"`
	Points []SeriesPoint     `json:"points"`
	Rows   []types.LedgerRow `json:"rows"`
	Alerts []types.Alert     `json:"alerts,omitempty"`
}

// jsonMeta represents report metadata in JSON output.
type jsonMeta struct {
	OrgID        string  `json:"org_id"`
	Period       string  `json:"period"`
	TotalCredits float64 `json:"total_credits"`
	AlertStatus  string  `json:"alert_status"`
}

// JSONFormatter formats output as a single indented JSON object.
// It produces a complete JSON document with meta, points, rows, and alerts.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := jsonOutput{
		Org: jsonMeta{
			OrgID:        r.OrgID,
			Period:       r.Period,
			TotalCredits: r.TotalCredits(),
			AlertStatus:  r.AlertStatus,
		},
		Points: r.Points,
		Rows:   r.Rows,
		Alerts: r.Alerts,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

// JSONLFormatter formats ledger rows as newline-delimited JSON
// (one object per line). This format is suitable for streaming
// processing with tools like jq.
type JSONLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONLFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, row := range r.Rows {
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("jsonl", func() Formatter {
		return &JSONLFormatter{}
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
