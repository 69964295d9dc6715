// Package output provides formatters for rendering consumption reports
// in various output formats (pretty, json, yaml, tsv, etc.).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/jamesainslie/creditscope/pkg/credits/aggregate"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// SeriesPoint is one date's credit consumption split by meter.
type SeriesPoint struct {
	// Date is the day key formatted M/D/YYYY.
	Date string `json:"date" yaml:"date"`

	// Ingestion is the Batch Data Pipeline credits for the day.
	Ingestion float64 `json:"ingestion" yaml:"ingestion"`

	// Indexing is the Unstructured Data Processed credits for the day.
	Indexing float64 `json:"indexing" yaml:"indexing"`
}

// Result contains the complete report data for formatting.
type Result struct {
	// OrgID identifies the org the report covers.
	OrgID string `json:"org_id" yaml:"org_id"`

	// Period is the human label of the reporting window.
	Period string `json:"period" yaml:"period"`

	// Points holds per-date consumption, in period order.
	Points []SeriesPoint `json:"points" yaml:"points"`

	// Rows is the derived activity ledger for the period.
	Rows []types.LedgerRow `json:"rows" yaml:"rows"`

	// Alerts holds the active (unmitigated, in-period) alerts.
	Alerts []types.Alert `json:"alerts,omitempty" yaml:"alerts,omitempty"`

	// AlertStatus is the overall severity across active alerts
	// (none, high, medium, low).
	AlertStatus string `json:"alert_status" yaml:"alert_status"`
}

// PointsFromSeries converts an aggregated chart series into report points.
func PointsFromSeries(s aggregate.Series) []SeriesPoint {
	points := make([]SeriesPoint, len(s.Dates))
	for i, date := range s.Dates {
		points[i] = SeriesPoint{
			Date:      date,
			Ingestion: s.Ingestion[i],
			Indexing:  s.Indexing[i],
		}
	}
	return points
}

// TotalCredits returns the summed consumption across all points.
func (r *Result) TotalCredits() float64 {
	var total float64
	for _, p := range r.Points {
		total += p.Ingestion + p.Indexing
	}
	return total
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}

// creditsCell renders a ledger row's credits column.
// Free rows (nil credits) render as a dash.
func creditsCell(c *float64) string {
	if c == nil {
		return "-"
	}
	return types.FormatCredits(*c, 2)
}
