// Package types provides core data types for the creditscope consumption
// dashboard. It includes the fixture feed records, the derived ledger rows,
// alert records, and helpers for parsing size fields and formatting credit
// amounts for display.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Credit cost constants. These are illustrative rates, not real billing.
const (
	// CreditsPerMB is the indexing cost per megabyte processed.
	CreditsPerMB = 60.0

	// CreditsPerIngestion is the informational cost per ingestion event.
	CreditsPerIngestion = 2000.0 / 1000000.0
)

// Meter display labels as they appear in the upstream billing feed.
const (
	// MeterIngestionLabel is the display name of the ingestion meter.
	MeterIngestionLabel = "Batch Data Pipeline"

	// MeterIndexingLabel is the display name of the indexing meter.
	MeterIndexingLabel = "Unstructured Data Processed"
)

// ActionType identifies which half of the file-processing flow a ledger
// row describes.
type ActionType string

// Action types for ledger rows.
const (
	ActionIngestion ActionType = "Ingestion"
	ActionIndexing  ActionType = "Indexing"
)

// UpdateReason describes why a file event was recorded.
type UpdateReason string

// Update reasons carried by the feed.
const (
	ReasonAdded   UpdateReason = "Added"
	ReasonUpdated UpdateReason = "Updated"
	ReasonDeleted UpdateReason = "Deleted"
)

// ConnectorType identifies the source connector a file arrived through.
type ConnectorType string

// Connector types, in the fixed order used for hash-based inference.
const (
	ConnectorGoogleDrive ConnectorType = "Google Drive"
	ConnectorWebCrawler  ConnectorType = "Web Crawler"
	ConnectorSharePoint  ConnectorType = "SharePoint"
)

// Severity is an alert severity level.
type Severity string

// Alert severities from most to least severe.
const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// FileEvent is a single immutable record from the fixture feed. The same
// file may appear under both meters for one calendar day: once when it was
// ingested and once when it was indexed.
type FileEvent struct {
	// FileName is the display name of the file, unique within a day.
	FileName string `yaml:"file_name" json:"file_name"`

	// FileType is the short document type label (PDF, HTML, PNG, Word).
	FileType string `yaml:"file_type" json:"file_type"`

	// UpdateTime is a free-text timestamp of the shape
	// "<MonthName> <day> <HH>:<MM>", e.g. "September 5 10:00".
	UpdateTime string `yaml:"update_time" json:"update_time"`

	// Reason records why the event happened (Added, Updated, Deleted).
	Reason UpdateReason `yaml:"reason" json:"reason"`

	// SizeMB is the file size in megabytes as a numeric string.
	// Non-numeric values are treated as zero for all credit math.
	SizeMB string `yaml:"size_mb" json:"size_mb"`

	// ConnectorType is the explicit source connector, if known.
	// Empty means the connector is inferred from the file name.
	ConnectorType ConnectorType `yaml:"connector_type,omitempty" json:"connector_type,omitempty"`

	// ConnectorName is the explicit connector instance name, if known.
	ConnectorName string `yaml:"connector_name,omitempty" json:"connector_name,omitempty"`
}

// MeterEvents holds one day's file events keyed by meter. The meter set is
// closed: exactly two meters exist, so this is a struct with two optional
// slices rather than an open-ended map. A nil slice means the meter
// recorded no events that day.
type MeterEvents struct {
	// Ingestion holds the day's "Batch Data Pipeline" events.
	Ingestion []FileEvent `yaml:"ingestion,omitempty" json:"ingestion,omitempty"`

	// Indexing holds the day's "Unstructured Data Processed" events.
	Indexing []FileEvent `yaml:"indexing,omitempty" json:"indexing,omitempty"`
}

// Empty reports whether neither meter recorded an event.
func (m MeterEvents) Empty() bool {
	return len(m.Ingestion) == 0 && len(m.Indexing) == 0
}

// EventsByDate maps a locale-style date key ("10/31/2025", no zero
// padding) to that day's per-meter events.
type EventsByDate map[string]MeterEvents

// LedgerRow is one row of the flat file-processing ledger. Rows are
// derived from the feed on every aggregation and never persisted.
type LedgerRow struct {
	// FileName is the file the row describes.
	FileName string `json:"file_name" yaml:"file_name"`

	// FileType is the short document type label.
	FileType string `json:"file_type" yaml:"file_type"`

	// Action is Ingestion or Indexing.
	Action ActionType `json:"action" yaml:"action"`

	// Time is the event timestamp in the feed's free-text format.
	Time string `json:"time" yaml:"time"`

	// SizeMB is the parsed file size in megabytes.
	SizeMB float64 `json:"size_mb" yaml:"size_mb"`

	// Reason records why the event happened. For a filename seen on both
	// meters the ingestion reason wins, keeping the pair consistent.
	Reason UpdateReason `json:"reason" yaml:"reason"`

	// ConnectorType is the explicit or inferred source connector.
	ConnectorType ConnectorType `json:"connector_type" yaml:"connector_type"`

	// ConnectorName is the connector instance name.
	ConnectorName string `json:"connector_name" yaml:"connector_name"`

	// ProcessingID groups files that were ingested in the same batch.
	ProcessingID string `json:"processing_id" yaml:"processing_id"`

	// Credits is the credit cost of the row. Ingestion rows carry nil:
	// ingestion is free, only counted for informational totals.
	Credits *float64 `json:"credits" yaml:"credits"`
}

// Alert is one entry of the fixed alert set shown above the chart.
type Alert struct {
	// ID identifies the alert for mitigation requests.
	ID int `yaml:"id" json:"id"`

	// Description is the human-readable alert text.
	Description string `yaml:"description" json:"description"`

	// Date is the display date, e.g. "October 31".
	Date string `yaml:"date" json:"date"`

	// DateValue is the comparable date in M/D/YYYY form.
	DateValue string `yaml:"date_value" json:"date_value"`

	// Severity is High, Medium, or Low.
	Severity Severity `yaml:"severity" json:"severity"`

	// Mitigated marks the alert as handled. It only ever flips to true.
	Mitigated bool `yaml:"mitigated" json:"mitigated"`
}

// ParseSizeMB parses a feed size field. Non-numeric or empty values
// degrade to zero rather than failing, so credit math never errors on
// bad fixture data.
func ParseSizeMB(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// IndexingCredits returns the indexing cost for a file of the given size.
func IndexingCredits(sizeMB float64) float64 {
	return sizeMB * CreditsPerMB
}

// Ptr returns a pointer to v. Useful for populating LedgerRow.Credits.
func Ptr(v float64) *float64 {
	return &v
}

// FormatCredits renders a credit amount for display. Amounts of one credit
// or more are rounded to whole credits with thousands separators; smaller
// amounts keep prec decimal places so sub-credit ingestion totals remain
// visible.
func FormatCredits(v float64, prec int) string {
	if v >= 1 {
		return humanize.Comma(int64(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// FormatSizeMB renders a megabyte size with two decimal places.
func FormatSizeMB(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
