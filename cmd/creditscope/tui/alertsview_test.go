package tui

import (
	"strings"
	"testing"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

func sampleAlerts() []types.Alert {
	return []types.Alert{
		{ID: 1, Description: "Consumption Spike", Date: "October 31", Severity: types.SeverityHigh},
		{ID: 2, Description: "Monthly summary ready", Date: "November 1", Severity: types.SeverityMedium},
	}
}

func TestAlertsNavigation(t *testing.T) {
	m := NewAlertsModel()
	m.SetAlerts(sampleAlerts())

	a, ok := m.CursorAlert()
	if !ok || a.ID != 1 {
		t.Fatalf("CursorAlert() = %+v, %v", a, ok)
	}

	m.HandleKey("down")
	a, _ = m.CursorAlert()
	if a.ID != 2 {
		t.Errorf("cursor alert ID = %d, want 2", a.ID)
	}

	// Cursor stops at the last alert.
	m.HandleKey("down")
	a, _ = m.CursorAlert()
	if a.ID != 2 {
		t.Errorf("cursor moved past last alert: ID = %d", a.ID)
	}

	m.HandleKey("home")
	a, _ = m.CursorAlert()
	if a.ID != 1 {
		t.Errorf("home cursor alert ID = %d, want 1", a.ID)
	}
}

func TestAlertsCursorClampsOnShrink(t *testing.T) {
	m := NewAlertsModel()
	m.SetAlerts(sampleAlerts())
	m.HandleKey("end")

	m.SetAlerts(sampleAlerts()[:1])
	a, ok := m.CursorAlert()
	if !ok || a.ID != 1 {
		t.Errorf("CursorAlert() = %+v, %v after shrink", a, ok)
	}

	m.SetAlerts(nil)
	if _, ok := m.CursorAlert(); ok {
		t.Error("CursorAlert() returned a value for an empty list")
	}
}

func TestAlertsView(t *testing.T) {
	m := NewAlertsModel()
	m.SetAlerts(sampleAlerts())

	view := m.View()
	if !strings.Contains(view, "Consumption Spike") {
		t.Error("view missing alert description")
	}
	if !strings.Contains(view, "[HIGH]") {
		t.Error("view missing severity tag")
	}
	if !strings.Contains(view, "mitigate selected alert") {
		t.Error("view missing mitigation hint")
	}
}

func TestAlertsViewEmpty(t *testing.T) {
	m := NewAlertsModel()
	if !strings.Contains(m.View(), "No active alerts") {
		t.Error("empty view missing placeholder")
	}
}
