package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// connectorCycle is the order the connector filter steps through.
// The empty value means no connector filtering.
var connectorCycle = []types.ConnectorType{
	"",
	types.ConnectorGoogleDrive,
	types.ConnectorWebCrawler,
	types.ConnectorSharePoint,
}

// actionCycle is the order the action filter steps through.
var actionCycle = []types.ActionType{
	"",
	types.ActionIngestion,
	types.ActionIndexing,
}

// LedgerModel renders the flat activity ledger as a filterable table.
type LedgerModel struct {
	rows []types.LedgerRow // unfiltered

	table     table.Model
	filter    textinput.Model
	filtering bool // filter input has focus

	actionIdx    int // index into actionCycle
	connectorIdx int // index into connectorCycle

	width  int
	height int
}

// NewLedgerModel creates an empty ledger model.
func NewLedgerModel() LedgerModel {
	ti := textinput.New()
	ti.Placeholder = "file, type, connector, or id..."
	ti.CharLimit = 64
	ti.Width = 30

	t := table.New(
		table.WithColumns(ledgerColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(mutedColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Background(highlightColor).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
	t.SetStyles(styles)

	return LedgerModel{
		table:  t,
		filter: ti,
		width:  80,
		height: 24,
	}
}

// ledgerColumns sizes the table columns for the given width.
func ledgerColumns(width int) []table.Column {
	fileWidth := width - 81
	if fileWidth < 16 {
		fileWidth = 16
	}
	return []table.Column{
		{Title: "TIME", Width: 18},
		{Title: "FILE", Width: fileWidth},
		{Title: "ACTION", Width: 9},
		{Title: "SIZE", Width: 8},
		{Title: "REASON", Width: 7},
		{Title: "CONNECTOR", Width: 14},
		{Title: "RUN", Width: 15},
		{Title: "CREDITS", Width: 9},
	}
}

// shortID abbreviates a processing ID for display.
func shortID(id string) string {
	if len(id) > 13 {
		return id[:13] + "…"
	}
	return id
}

// SetRows replaces the ledger contents and reapplies filters.
func (m *LedgerModel) SetRows(rows []types.LedgerRow) {
	m.rows = rows
	m.applyFilters()
}

// SetDimensions updates the viewport size.
func (m *LedgerModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(ledgerColumns(width - 8))
	tableHeight := height - 10
	if tableHeight < 4 {
		tableHeight = 4
	}
	m.table.SetHeight(tableHeight)
}

// Filtering reports whether the text filter is capturing input.
func (m *LedgerModel) Filtering() bool {
	return m.filtering
}

// Update handles messages for the ledger view.
func (m LedgerModel) Update(msg tea.Msg) (LedgerModel, tea.Cmd) {
	var cmd tea.Cmd

	if m.filtering {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				if key.String() == "esc" {
					m.filter.SetValue("")
					m.applyFilters()
				}
				return m, nil
			}
		}
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilters()
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case "a":
			m.actionIdx = (m.actionIdx + 1) % len(actionCycle)
			m.applyFilters()
			return m, nil

		case "c":
			m.connectorIdx = (m.connectorIdx + 1) % len(connectorCycle)
			m.applyFilters()
			return m, nil

		case "x":
			m.filter.SetValue("")
			m.actionIdx = 0
			m.connectorIdx = 0
			m.applyFilters()
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// matches reports whether a row passes the current filters.
func (m *LedgerModel) matches(row types.LedgerRow) bool {
	if action := actionCycle[m.actionIdx]; action != "" && row.Action != action {
		return false
	}
	if connector := connectorCycle[m.connectorIdx]; connector != "" && row.ConnectorType != connector {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(m.filter.Value())); q != "" {
		match := strings.Contains(strings.ToLower(row.FileName), q) ||
			strings.Contains(strings.ToLower(row.FileType), q) ||
			strings.Contains(strings.ToLower(row.ConnectorName), q) ||
			strings.Contains(strings.ToLower(row.ProcessingID), q)
		if !match {
			return false
		}
	}
	return true
}

// applyFilters rebuilds the visible table rows.
func (m *LedgerModel) applyFilters() {
	var tableRows []table.Row
	for _, row := range m.rows {
		if !m.matches(row) {
			continue
		}

		credits := "-"
		if row.Credits != nil {
			credits = types.FormatCredits(*row.Credits, 2)
		}

		tableRows = append(tableRows, table.Row{
			row.Time,
			row.FileName,
			string(row.Action),
			types.FormatSizeMB(row.SizeMB),
			string(row.Reason),
			row.ConnectorName,
			shortID(row.ProcessingID),
			credits,
		})
	}
	m.table.SetRows(tableRows)
}

// VisibleCount returns how many rows pass the current filters.
func (m *LedgerModel) VisibleCount() int {
	return len(m.table.Rows())
}

// View renders the ledger table with its filter bar.
func (m LedgerModel) View() string {
	var b strings.Builder

	// Filter status bar
	var filters []string
	if action := actionCycle[m.actionIdx]; action != "" {
		filters = append(filters, "action="+string(action))
	}
	if connector := connectorCycle[m.connectorIdx]; connector != "" {
		filters = append(filters, "connector="+string(connector))
	}
	if v := strings.TrimSpace(m.filter.Value()); v != "" && !m.filtering {
		filters = append(filters, "file~"+v)
	}

	if m.filtering {
		b.WriteString("  " + titleStyle.Render("Filter: ") + m.filter.View())
	} else if len(filters) > 0 {
		b.WriteString("  " + mutedTextStyle.Render("Filters: "+strings.Join(filters, "  ")))
	} else {
		b.WriteString("  " + mutedTextStyle.Render("No filters"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	b.WriteString(mutedTextStyle.Render(
		fmt.Sprintf("  %d of %d rows", m.VisibleCount(), len(m.rows))))
	b.WriteString("\n")

	return b.String()
}
