package tui

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/ledger"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// meterSection is one billing meter's files with its credit total.
type meterSection struct {
	label   string
	action  types.ActionType
	rows    []types.LedgerRow
	credits float64
}

// GroupedModel renders the ledger grouped by billing meter, with
// expandable sections. The indexing meter totals the per-file credits;
// the pipeline meter charges a flat rate per event and shows no
// per-file credits column.
type GroupedModel struct {
	sections []meterSection
	expanded map[string]bool
	cursor   int
	offset   int
	width    int
	height   int
}

// NewGroupedModel creates an empty grouped model.
func NewGroupedModel() GroupedModel {
	return GroupedModel{
		expanded: make(map[string]bool),
		width:    80,
		height:   24,
	}
}

// SetRows rebuilds the meter sections from a flat ledger. Rows stay
// clustered by processing run inside each section, meters with no files
// are omitted, and expansion state survives across rebuilds for meters
// that still have files.
func (m *GroupedModel) SetRows(rows []types.LedgerRow) {
	ordered := ledger.GroupByProcessing(rows)

	var indexing, ingestion []types.LedgerRow
	var indexingCredits float64
	for _, row := range ordered {
		if row.Action == types.ActionIndexing {
			indexing = append(indexing, row)
			if row.Credits != nil {
				indexingCredits += *row.Credits
			}
		} else {
			ingestion = append(ingestion, row)
		}
	}

	m.sections = nil
	if len(indexing) > 0 {
		m.sections = append(m.sections, meterSection{
			label:   types.MeterIndexingLabel,
			action:  types.ActionIndexing,
			rows:    indexing,
			credits: indexingCredits,
		})
	}
	if len(ingestion) > 0 {
		m.sections = append(m.sections, meterSection{
			label:   types.MeterIngestionLabel,
			action:  types.ActionIngestion,
			rows:    ingestion,
			credits: float64(len(ingestion)) * types.CreditsPerIngestion,
		})
	}

	still := make(map[string]bool, len(m.expanded))
	for _, s := range m.sections {
		if m.expanded[s.label] {
			still[s.label] = true
		}
	}
	m.expanded = still

	if m.cursor >= len(m.sections) {
		m.cursor = len(m.sections) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// SetDimensions updates the viewport size.
func (m *GroupedModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// HandleKey processes grouped-view navigation.
func (m *GroupedModel) HandleKey(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case "down", "j":
		if m.cursor < len(m.sections)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case "home", "g":
		m.cursor = 0
		m.offset = 0

	case "end", "G":
		if len(m.sections) > 0 {
			m.cursor = len(m.sections) - 1
			m.ensureVisible()
		}

	case "enter", " ":
		if m.cursor < len(m.sections) {
			label := m.sections[m.cursor].label
			m.expanded[label] = !m.expanded[label]
		}

	case "e":
		for _, s := range m.sections {
			m.expanded[s.label] = true
		}

	case "z":
		m.expanded = make(map[string]bool)
	}
}

// visibleLines returns how many content lines fit in the viewport.
func (m *GroupedModel) visibleLines() int {
	lines := m.height - 9
	if lines < 3 {
		lines = 3
	}
	return lines
}

// ensureVisible scrolls so the cursor section header is on screen.
// Section rows are counted so expanded sections consume more space.
func (m *GroupedModel) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	visible := m.visibleLines()
	for m.linesBetween(m.offset, m.cursor+1) > visible && m.offset < m.cursor {
		m.offset++
	}
}

// linesBetween counts rendered lines for sections in [from, to).
func (m *GroupedModel) linesBetween(from, to int) int {
	lines := 0
	for i := from; i < to && i < len(m.sections); i++ {
		lines++
		if m.expanded[m.sections[i].label] {
			lines += len(m.sections[i].rows)
		}
	}
	return lines
}

// sectionLabel renders a meter name in its chart color.
func sectionLabel(s meterSection) string {
	if s.action == types.ActionIngestion {
		return ingestionTextStyle.Render(s.label)
	}
	return indexingTextStyle.Render(s.label)
}

// View renders the grouped ledger.
func (m GroupedModel) View() string {
	var b strings.Builder

	if len(m.sections) == 0 {
		b.WriteString(mutedTextStyle.Render("  No activity in this period"))
		b.WriteString("\n")
		return b.String()
	}

	budget := m.visibleLines()
	rendered := 0

	for i := m.offset; i < len(m.sections) && rendered < budget; i++ {
		s := m.sections[i]
		expanded := m.expanded[s.label]

		marker := "▸"
		if expanded {
			marker = "▾"
		}

		header := fmt.Sprintf("%s %s (%s credits)  %d files",
			marker, sectionLabel(s), types.FormatCredits(s.credits, 4), len(s.rows))

		if i == m.cursor {
			b.WriteString("  " + cursorStyle.Render("> ") + header)
		} else {
			b.WriteString("    " + header)
		}
		b.WriteString("\n")
		rendered++

		if !expanded {
			continue
		}

		for _, row := range s.rows {
			if rendered >= budget {
				break
			}

			nameWidth := m.width - 64
			if nameWidth < 16 {
				nameWidth = 16
			}

			// Only the indexing meter has a per-file credits column.
			credits := ""
			if s.action == types.ActionIndexing && row.Credits != nil {
				credits = padLeft(types.FormatCredits(*row.Credits, 4), 10)
			}

			line := fmt.Sprintf("      %s %s %s %s %s%s",
				padRight(truncate(row.FileName, nameWidth), nameWidth),
				padRight(string(row.Reason), 7),
				padRight(row.Time, 18),
				padLeft(types.FormatSizeMB(row.SizeMB)+" MB", 10),
				mutedTextStyle.Render(padRight(row.ConnectorName, 15)),
				creditsTextStyle.Render(credits))
			b.WriteString(line)
			b.WriteString("\n")
			rendered++
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedTextStyle.Render(fmt.Sprintf("  %d meters", len(m.sections))))
	b.WriteString("\n")

	return b.String()
}
