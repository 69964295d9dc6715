package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/aggregate"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// ChartModel renders the per-date consumption chart. Each date is a
// stacked horizontal bar with one segment per meter. Moving the cursor
// and pressing enter narrows the ledger to that date.
type ChartModel struct {
	series   aggregate.Series
	cursor   int
	selected int // index into series.Dates, -1 when the whole period is shown
	offset   int // scroll offset
	width    int
	height   int
}

// NewChartModel creates an empty chart model.
func NewChartModel() ChartModel {
	return ChartModel{
		selected: -1,
		width:    80,
		height:   24,
	}
}

// SetSeries replaces the chart data, preserving the selected date when
// it still exists in the new series.
func (m *ChartModel) SetSeries(s aggregate.Series) {
	selectedDate := m.SelectedDate()
	m.series = s
	m.selected = -1
	if selectedDate != "" {
		for i, d := range s.Dates {
			if d == selectedDate {
				m.selected = i
				break
			}
		}
	}
	if m.cursor >= len(s.Dates) {
		m.cursor = len(s.Dates) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// SetDimensions updates the viewport size.
func (m *ChartModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SelectedDate returns the drilled-down date, or "" for the whole period.
func (m *ChartModel) SelectedDate() string {
	if m.selected < 0 || m.selected >= len(m.series.Dates) {
		return ""
	}
	return m.series.Dates[m.selected]
}

// HandleKey processes chart navigation. It reports whether the date
// selection changed, so the ledger can be recomputed.
func (m *ChartModel) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case "down", "j":
		if m.cursor < len(m.series.Dates)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case "home", "g":
		m.cursor = 0
		m.offset = 0

	case "end", "G":
		if len(m.series.Dates) > 0 {
			m.cursor = len(m.series.Dates) - 1
			m.ensureVisible()
		}

	case "enter", " ":
		// Toggle drill-down on the cursor date.
		if m.selected == m.cursor {
			m.selected = -1
		} else {
			m.selected = m.cursor
		}
		return true

	case "esc":
		if m.selected >= 0 {
			m.selected = -1
			return true
		}
	}

	return false
}

// visibleRows returns how many date rows fit in the viewport.
func (m *ChartModel) visibleRows() int {
	// Header, divider, legend, and hints take some lines.
	rows := m.height - 9
	if rows < 3 {
		rows = 3
	}
	return rows
}

// ensureVisible scrolls the viewport so the cursor row is on screen.
func (m *ChartModel) ensureVisible() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// barCells converts a credit amount to a number of filled cells.
func barCells(value, maxTotal float64, barWidth int) int {
	if maxTotal <= 0 || value <= 0 {
		return 0
	}
	cells := int(math.Round(value / maxTotal * float64(barWidth)))
	if cells == 0 {
		cells = 1 // Non-zero consumption always shows at least one cell
	}
	if cells > barWidth {
		cells = barWidth
	}
	return cells
}

// View renders the chart.
func (m ChartModel) View() string {
	var b strings.Builder

	contentWidth := m.width - 6
	if contentWidth < 30 {
		contentWidth = 30
	}

	// Legend
	legend := fmt.Sprintf("  %s %s   %s %s",
		ingestionBarStyle.Render("█"),
		mutedTextStyle.Render(types.MeterIngestionLabel),
		indexingBarStyle.Render("█"),
		mutedTextStyle.Render(types.MeterIndexingLabel))
	b.WriteString(legend)
	b.WriteString("\n\n")

	if len(m.series.Dates) == 0 {
		b.WriteString(mutedTextStyle.Render("  No consumption in this period"))
		b.WriteString("\n")
		return b.String()
	}

	const dateWidth = 10
	const totalWidth = 12
	barWidth := contentWidth - dateWidth - totalWidth - 6
	if barWidth < 10 {
		barWidth = 10
	}

	maxTotal := m.series.MaxTotal()

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.series.Dates) {
		end = len(m.series.Dates)
	}

	for i := m.offset; i < end; i++ {
		date := m.series.Dates[i]
		ing := m.series.Ingestion[i]
		idx := m.series.Indexing[i]
		total := ing + idx

		ingCells := barCells(ing, maxTotal, barWidth)
		idxCells := barCells(idx, maxTotal, barWidth)
		if ingCells+idxCells > barWidth {
			idxCells = barWidth - ingCells
		}
		emptyCells := barWidth - ingCells - idxCells

		bar := ingestionBarStyle.Render(strings.Repeat("█", ingCells)) +
			indexingBarStyle.Render(strings.Repeat("█", idxCells)) +
			emptyBarStyle.Render(strings.Repeat("░", emptyCells))

		totalStr := ""
		if total > 0 {
			totalStr = creditsTextStyle.Render(padLeft(types.FormatCredits(total, 2), totalWidth))
		} else {
			totalStr = mutedTextStyle.Render(padLeft("-", totalWidth))
		}

		cursor := "  "
		dateStr := padRight(date, dateWidth)
		switch {
		case i == m.cursor && i == m.selected:
			cursor = cursorStyle.Render("▶ ")
			dateStr = selectedItemStyle.Render(dateStr)
		case i == m.cursor:
			cursor = cursorStyle.Render("> ")
			dateStr = selectedItemStyle.Render(dateStr)
		case i == m.selected:
			cursor = cursorStyle.Render("• ")
			dateStr = titleStyle.Render(dateStr)
		default:
			dateStr = normalItemStyle.Render(dateStr)
		}

		fmt.Fprintf(&b, "  %s%s %s %s\n", cursor, dateStr, bar, totalStr)
	}

	// Scroll indicator
	if len(m.series.Dates) > visible {
		b.WriteString(mutedTextStyle.Render(
			fmt.Sprintf("  %d-%d of %d dates", m.offset+1, end, len(m.series.Dates))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.selected >= 0 {
		b.WriteString(mutedTextStyle.Render("  Showing ledger for " + m.SelectedDate() + " (esc to clear)"))
		b.WriteString("\n")
	}

	return b.String()
}
