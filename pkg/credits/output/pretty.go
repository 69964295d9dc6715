package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing report suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	w.WriteString(f.formatConsumption(r))

	if len(r.Alerts) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatAlerts(r.Alerts))
	}

	w.WriteString(f.formatLedger(r))
	w.WriteString(f.formatFooter(r))

	return nil
}

// formatHeader builds the header box with org metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	orgLabel := LabelStyle.Render("Org:")
	orgValue := ValueStyle.Render(r.OrgID)
	lines = append(lines, fmt.Sprintf("%s %s", orgLabel, orgValue))

	periodLabel := LabelStyle.Render("Period:")
	periodValue := ValueStyle.Render(r.Period)
	status := f.formatAlertStatus(r.AlertStatus)
	lines = append(lines, fmt.Sprintf("%s %s  %s", periodLabel, periodValue, status))

	content := strings.Join(lines, "\n")
	return HeaderBox.Render(content)
}

// formatAlertStatus returns a styled string for the overall alert state.
func (f *PrettyFormatter) formatAlertStatus(status string) string {
	switch status {
	case "high":
		return HighStyle.Render("alerts: high")
	case "medium":
		return MediumStyle.Render("alerts: medium")
	case "low":
		return LowStyle.Render("alerts: low")
	default:
		return MutedStyle.Render("alerts: none")
	}
}

// formatConsumption builds the per-date consumption table.
func (f *PrettyFormatter) formatConsumption(r *Result) string {
	if len(r.Points) == 0 {
		return MutedStyle.Render("  No consumption in period\n")
	}

	var sb strings.Builder

	dateHeader := TableHeaderStyle.Render("DATE")
	ingHeader := TableHeaderStyle.Render(types.MeterIngestionLabel)
	idxHeader := TableHeaderStyle.Render(types.MeterIndexingLabel)
	sb.WriteString(fmt.Sprintf("  %-12s  %s  %s\n", dateHeader, ingHeader, idxHeader))

	for _, p := range r.Points {
		if p.Ingestion == 0 && p.Indexing == 0 {
			continue
		}
		ing := IngestionStyle.Render(padLeft(types.FormatCredits(p.Ingestion, 4), len(types.MeterIngestionLabel)))
		idx := IndexingStyle.Render(padLeft(types.FormatCredits(p.Indexing, 2), len(types.MeterIndexingLabel)))
		sb.WriteString(fmt.Sprintf("  %-12s  %s  %s\n", p.Date, ing, idx))
	}

	return sb.String()
}

// formatAlerts builds the active alert block.
func (f *PrettyFormatter) formatAlerts(alerts []types.Alert) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Active alerts:"))
	sb.WriteString("\n")

	for _, a := range alerts {
		var line string
		switch a.Severity {
		case types.SeverityHigh:
			line = HighStyle.Render(fmt.Sprintf("  [high] %s (%s)", a.Description, a.Date))
		case types.SeverityMedium:
			line = MediumStyle.Render(fmt.Sprintf("  [medium] %s (%s)", a.Description, a.Date))
		default:
			line = LowStyle.Render(fmt.Sprintf("  [low] %s (%s)", a.Description, a.Date))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatLedger builds the activity ledger table.
func (f *PrettyFormatter) formatLedger(r *Result) string {
	if len(r.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(TitleStyle.Render("Activity:"))
	sb.WriteString("\n")

	fileWidth := 4
	for _, row := range r.Rows {
		if len(row.FileName) > fileWidth {
			fileWidth = len(row.FileName)
		}
	}

	header := fmt.Sprintf("  %-*s  %-9s  %-18s  %-9s  %s\n",
		fileWidth, "FILE", "ACTION", "TIME", "CREDITS", "CONNECTOR")
	sb.WriteString(TableHeaderStyle.Render(header))

	for _, row := range r.Rows {
		credits := creditsCell(row.Credits)
		if row.Action == types.ActionIndexing {
			credits = CreditsStyle.Render(padLeft(credits, 9))
		} else {
			credits = MutedStyle.Render(padLeft(credits, 9))
		}
		sb.WriteString(fmt.Sprintf("  %-*s  %-9s  %-18s  %s  %s\n",
			fileWidth, row.FileName, string(row.Action), row.Time, credits, row.ConnectorName))
	}

	return sb.String()
}

// formatFooter builds the footer box with summary totals.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	var parts []string

	rowsLabel := LabelStyle.Render("Rows:")
	rowsValue := ValueStyle.Render(fmt.Sprintf("%d", len(r.Rows)))
	parts = append(parts, fmt.Sprintf("%s %s", rowsLabel, rowsValue))

	totalLabel := LabelStyle.Render("Total:")
	totalValue := CreditsStyle.Render(types.FormatCredits(r.TotalCredits(), 2) + " credits")
	parts = append(parts, fmt.Sprintf("%s %s", totalLabel, totalValue))

	hint := MutedStyle.Render("Use -o tsv for unformatted output")
	parts = append(parts, hint)

	content := strings.Join(parts, "  ")
	return FooterBox.Render(content)
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
