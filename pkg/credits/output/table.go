package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// ledgerHeader is the column order shared by the tabular formatters.
var ledgerHeader = []string{"DATE", "TIME", "FILE", "ACTION", "SIZE_MB", "REASON", "CONNECTOR", "PROCESSING_ID", "CREDITS"}

// rowCells renders a ledger row into the shared column order.
func rowCells(date string, row types.LedgerRow) []string {
	return []string{
		date,
		row.Time,
		row.FileName,
		string(row.Action),
		types.FormatSizeMB(row.SizeMB),
		string(row.Reason),
		row.ConnectorName,
		row.ProcessingID,
		creditsCell(row.Credits),
	}
}

// resultDate picks the date column for a row. Reports covering a single
// day carry it on every row; multi-day reports leave it to the caller,
// so the period label is used instead.
func resultDate(r *Result) string {
	if len(r.Points) == 1 {
		return r.Points[0].Date
	}
	return r.Period
}

// TSVFormatter formats the ledger as tab-separated values.
// It produces a simple table with a header row followed by data rows.
type TSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(strings.Join(ledgerHeader, "\t"))
	w.WriteByte('\n')

	date := resultDate(r)
	for _, row := range r.Rows {
		w.WriteString(strings.Join(rowCells(date, row), "\t"))
		w.WriteByte('\n')
	}

	return nil
}

func init() {
	Register("tsv", func() Formatter {
		return &TSVFormatter{}
	})
}

// Ensure TSVFormatter implements Formatter.
var _ Formatter = (*TSVFormatter)(nil)

// CSVFormatter formats the ledger as comma-separated values with proper
// quoting. It uses encoding/csv for RFC 4180 compliant output.
type CSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *CSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ledgerHeader); err != nil {
		return err
	}

	date := resultDate(r)
	for _, row := range r.Rows {
		if err := writer.Write(rowCells(date, row)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	Register("csv", func() Formatter {
		return &CSVFormatter{}
	})
}

// Ensure CSVFormatter implements Formatter.
var _ Formatter = (*CSVFormatter)(nil)

// MarkdownFormatter formats the ledger as a GitHub-flavored Markdown table.
type MarkdownFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *MarkdownFormatter) Format(w *bytes.Buffer, r *Result) error {
	fmt.Fprintf(w, "| %s |\n", strings.Join(ledgerHeader, " | "))

	seps := make([]string, len(ledgerHeader))
	for i := range seps {
		seps[i] = "---"
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(seps, "|"))

	date := resultDate(r)
	for _, row := range r.Rows {
		cells := rowCells(date, row)
		for i, c := range cells {
			cells[i] = escapeMarkdownPipe(c)
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}

	return nil
}

// escapeMarkdownPipe escapes pipe characters in a string for Markdown tables.
func escapeMarkdownPipe(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func init() {
	Register("markdown", func() Formatter {
		return &MarkdownFormatter{}
	})
}

// Ensure MarkdownFormatter implements Formatter.
var _ Formatter = (*MarkdownFormatter)(nil)
