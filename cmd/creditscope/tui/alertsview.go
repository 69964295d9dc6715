package tui

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// AlertsModel renders the active consumption alerts and lets the user
// mitigate them.
type AlertsModel struct {
	alerts []types.Alert
	cursor int
	width  int
	height int
}

// NewAlertsModel creates an empty alerts model.
func NewAlertsModel() AlertsModel {
	return AlertsModel{width: 80, height: 24}
}

// SetAlerts replaces the visible alert list.
func (m *AlertsModel) SetAlerts(alerts []types.Alert) {
	m.alerts = alerts
	if m.cursor >= len(alerts) {
		m.cursor = len(alerts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetDimensions updates the viewport size.
func (m *AlertsModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// CursorAlert returns the alert under the cursor, if any.
func (m *AlertsModel) CursorAlert() (types.Alert, bool) {
	if m.cursor < 0 || m.cursor >= len(m.alerts) {
		return types.Alert{}, false
	}
	return m.alerts[m.cursor], true
}

// HandleKey processes alert list navigation.
func (m *AlertsModel) HandleKey(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.alerts)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.alerts) > 0 {
			m.cursor = len(m.alerts) - 1
		}
	}
}

// severityLabel renders a styled severity tag.
func severityLabel(s types.Severity) string {
	switch s {
	case types.SeverityHigh:
		return highSeverityStyle.Render("[HIGH]  ")
	case types.SeverityMedium:
		return mediumSeverityStyle.Render("[MEDIUM]")
	default:
		return lowSeverityStyle.Render("[LOW]   ")
	}
}

// View renders the alert list.
func (m AlertsModel) View() string {
	var b strings.Builder

	if len(m.alerts) == 0 {
		b.WriteString(successTextStyle.Render("  No active alerts"))
		b.WriteString("\n")
		return b.String()
	}

	for i, a := range m.alerts {
		line := fmt.Sprintf("%s %s (%s)", severityLabel(a.Severity), a.Description, a.Date)
		if i == m.cursor {
			b.WriteString("  " + cursorStyle.Render("> ") + selectedItemStyle.Render(line))
		} else {
			b.WriteString("    " + normalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + keyStyle.Render("[m]") + " " + keyDescStyle.Render("mitigate selected alert"))
	b.WriteString("\n")

	return b.String()
}
