package output_test

import (
	"bytes"
	"testing"

	"github.com/jamesainslie/creditscope/pkg/credits/aggregate"
	"github.com/jamesainslie/creditscope/pkg/credits/output"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

func TestRegistryGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"pretty", false},
		{"json", false},
		{"jsonl", false},
		{"yaml", false},
		{"tsv", false},
		{"csv", false},
		{"markdown", false},
		{"nope", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := output.Get(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && f == nil {
				t.Errorf("Get(%q) returned nil formatter", tt.name)
			}
		})
	}
}

func TestRegistryAvailable(t *testing.T) {
	names := output.Available()
	if len(names) < 5 {
		t.Fatalf("Available() = %v, want at least the built-in formatters", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Available() not sorted: %v", names)
		}
	}
}

func TestCustomRegistry(t *testing.T) {
	reg := output.NewRegistry()
	reg.Register("tsv", func() output.Formatter { return &output.TSVFormatter{} })

	if _, err := reg.Get("tsv"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, err := reg.Get("pretty"); err == nil {
		t.Error("custom registry resolved a name it never registered")
	}
}

func TestPointsFromSeries(t *testing.T) {
	s := aggregate.Series{
		Dates:     []string{"10/30/2025", "10/31/2025"},
		Ingestion: []float64{0.006, 0.016},
		Indexing:  []float64{3264, 22048.8},
	}

	points := output.PointsFromSeries(s)
	if len(points) != 2 {
		t.Fatalf("PointsFromSeries() returned %d points, want 2", len(points))
	}
	if points[1].Date != "10/31/2025" || points[1].Indexing != 22048.8 {
		t.Errorf("PointsFromSeries()[1] = %+v", points[1])
	}
}

func TestTotalCredits(t *testing.T) {
	r := &output.Result{
		Points: []output.SeriesPoint{
			{Date: "10/30/2025", Ingestion: 1, Indexing: 2},
			{Date: "10/31/2025", Ingestion: 3, Indexing: 4},
		},
	}
	if got := r.TotalCredits(); got != 10 {
		t.Errorf("TotalCredits() = %v, want 10", got)
	}
}

// sampleResult builds a small report shared by the formatter tests.
func sampleResult() *output.Result {
	return &output.Result{
		OrgID:       "00D4J0000001wpEUAQ",
		Period:      "Last 7 days",
		AlertStatus: "high",
		Points: []output.SeriesPoint{
			{Date: "10/31/2025", Ingestion: 0.016, Indexing: 22048.8},
		},
		Rows: []types.LedgerRow{
			{
				FileName:      "Halloween batch.pdf",
				FileType:      "PDF",
				Action:        types.ActionIngestion,
				Time:          "October 31 07:00",
				SizeMB:        45.5,
				Reason:        types.ReasonAdded,
				ConnectorType: types.ConnectorGoogleDrive,
				ConnectorName: "ACME Drive",
				ProcessingID:  "batch-1",
				Credits:       nil,
			},
			{
				FileName:      "Halloween batch.pdf",
				FileType:      "PDF",
				Action:        types.ActionIndexing,
				Time:          "October 31 08:30",
				SizeMB:        45.5,
				Reason:        types.ReasonAdded,
				ConnectorType: types.ConnectorGoogleDrive,
				ConnectorName: "ACME Drive",
				ProcessingID:  "batch-1",
				Credits:       types.Ptr(2730),
			},
		},
		Alerts: []types.Alert{
			{ID: 1, Description: "Consumption Spike", Date: "October 31", DateValue: "10/31/2025", Severity: types.SeverityHigh},
		},
	}
}

func formatWith(t *testing.T, name string, r *output.Result) string {
	t.Helper()
	f, err := output.Get(name)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", name, err)
	}
	var buf bytes.Buffer
	if err := f.Format(&buf, r); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return buf.String()
}

func TestFormattersProduceOutput(t *testing.T) {
	r := sampleResult()
	for _, name := range output.Available() {
		t.Run(name, func(t *testing.T) {
			got := formatWith(t, name, r)
			if got == "" {
				t.Errorf("%s formatter produced no output", name)
			}
		})
	}
}
