package tui

import (
	"testing"

	"github.com/jamesainslie/creditscope/pkg/credits/feed"
	"github.com/jamesainslie/creditscope/pkg/credits/period"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

func testFeed() *feed.Feed {
	return &feed.Feed{
		OrgIDs: []string{"00Dtest"},
		Alerts: []types.Alert{
			{ID: 1, Description: "Consumption Spike", Date: "October 31", DateValue: "10/31/2025", Severity: types.SeverityHigh},
			{ID: 2, Description: "Monthly summary ready", Date: "November 1", DateValue: "11/1/2025", Severity: types.SeverityMedium},
		},
		Events: types.EventsByDate{},
	}
}

func testModel() Model {
	return NewModel(Options{
		Feed:     testFeed(),
		OrgID:    "00Dtest",
		Period:   period.Last90Days,
		Resolver: period.NewResolver(nil),
	})
}

func TestMitigateRemovesActiveAlert(t *testing.T) {
	m := testModel()
	if len(m.alertsView.alerts) != 2 {
		t.Fatalf("got %d active alerts, want 2", len(m.alertsView.alerts))
	}

	model, _ := m.Update(keyMsg("4"))
	m = model.(Model)
	if m.tab != TabAlerts {
		t.Fatalf("tab = %v, want TabAlerts", m.tab)
	}

	model, _ = m.Update(keyMsg("m"))
	m = model.(Model)
	if len(m.alertsView.alerts) != 1 {
		t.Fatalf("got %d active alerts after mitigation, want 1", len(m.alertsView.alerts))
	}
	if m.alertsView.alerts[0].ID != 2 {
		t.Errorf("remaining alert ID = %d, want 2", m.alertsView.alerts[0].ID)
	}
}

func TestMitigationSurvivesFeedReload(t *testing.T) {
	m := testModel()
	model, _ := m.Update(keyMsg("4"))
	m = model.(Model)
	model, _ = m.Update(keyMsg("m"))
	m = model.(Model)

	// A reloaded feed carries the alert as unmitigated again.
	model, cmd := m.Update(feedReloadMsg{feed: testFeed()})
	m = model.(Model)
	if cmd == nil {
		t.Error("reload did not re-arm the feed listener")
	}
	if len(m.alertsView.alerts) != 1 {
		t.Fatalf("got %d active alerts after reload, want 1", len(m.alertsView.alerts))
	}
	if m.alertsView.alerts[0].ID != 2 {
		t.Errorf("remaining alert ID = %d, want 2", m.alertsView.alerts[0].ID)
	}
}

func TestPeriodCycle(t *testing.T) {
	if got := nextPeriod(period.Last24Hours); got != period.Last7Days {
		t.Errorf("nextPeriod(24h) = %s", got)
	}
	if got := nextPeriod(period.Last90Days); got != period.Last24Hours {
		t.Errorf("nextPeriod(90d) = %s", got)
	}
	if got := nextPeriod(period.Custom); got != period.Last24Hours {
		t.Errorf("nextPeriod(custom) = %s", got)
	}
}
