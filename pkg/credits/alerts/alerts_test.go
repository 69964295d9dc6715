package alerts

import (
	"testing"

	"github.com/jamesainslie/creditscope/pkg/credits/period"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

func fixtureAlerts() []types.Alert {
	return []types.Alert{
		{ID: 1, Description: "Consumption Spike", Date: "October 31", DateValue: "10/31/2025", Severity: types.SeverityHigh},
		{ID: 2, Description: "Monthly summary.pdf was updated 4 times in one day", Date: "November 1", DateValue: "11/1/2025", Severity: types.SeverityMedium},
		{ID: 4, Description: "Batch processing delay", Date: "October 25", DateValue: "10/25/2025", Severity: types.SeverityMedium, Mitigated: true},
	}
}

func TestActive_FiltersByPeriodAndMitigation(t *testing.T) {
	r := period.NewResolver(nil)
	all := fixtureAlerts()

	tests := []struct {
		name    string
		period  period.Period
		wantIDs []int
	}{
		{name: "7d includes both open alerts", period: period.Last7Days, wantIDs: []int{1, 2}},
		{name: "24h range reaches back one day inclusive", period: period.Last24Hours, wantIDs: []int{1, 2}},
		{name: "mitigated alert never active", period: period.Last90Days, wantIDs: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Active(all, r, tt.period)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d active alerts, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("active[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestActive_ExcludesDatesOutsidePeriod(t *testing.T) {
	r := period.NewResolver(nil)
	all := []types.Alert{
		{ID: 9, DateValue: "10/24/2025", Severity: types.SeverityLow},
	}

	if got := Active(all, r, period.Last7Days); len(got) != 0 {
		t.Errorf("alert one day before the 7d range should be filtered, got %v", got)
	}
	if got := Active(all, r, period.Last30Days); len(got) != 1 {
		t.Errorf("same alert should be active over 30d, got %v", got)
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name   string
		alerts []types.Alert
		want   Status
	}{
		{name: "empty is none", alerts: nil, want: StatusNone},
		{
			name:   "high dominates",
			alerts: []types.Alert{{Severity: types.SeverityLow}, {Severity: types.SeverityHigh}, {Severity: types.SeverityMedium}},
			want:   StatusHigh,
		},
		{
			name:   "medium over low",
			alerts: []types.Alert{{Severity: types.SeverityLow}, {Severity: types.SeverityMedium}},
			want:   StatusMedium,
		},
		{
			name:   "low only",
			alerts: []types.Alert{{Severity: types.SeverityLow}},
			want:   StatusLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overall(tt.alerts); got != tt.want {
				t.Errorf("Overall = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMitigate_RemovesFromActiveQueries(t *testing.T) {
	r := period.NewResolver(nil)
	all := fixtureAlerts()

	mitigated := Mitigate(all, 1)
	got := Active(mitigated, r, period.Last7Days)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("after mitigating id=1, active = %v, want only id=2", got)
	}

	// The original set is untouched.
	if all[0].Mitigated {
		t.Error("Mitigate must not modify its input")
	}
}

func TestMitigate_UnknownIDIsNoOp(t *testing.T) {
	all := fixtureAlerts()
	got := Mitigate(all, 999)

	if len(got) != len(all) {
		t.Fatalf("len = %d, want %d", len(got), len(all))
	}
	for i := range all {
		if got[i] != all[i] {
			t.Errorf("alert %d changed: %+v != %+v", i, got[i], all[i])
		}
	}
}

func TestMitigate_NeverUnmitigates(t *testing.T) {
	all := fixtureAlerts()
	got := Mitigate(Mitigate(all, 4), 4)
	if !got[2].Mitigated {
		t.Error("mitigating twice must keep the alert mitigated")
	}
}
