// Package alerts filters the dashboard's alert set by reporting period
// and tracks mitigation. Mitigation is a pure state transition: alerts
// are never deleted and never un-mitigated.
package alerts

import (
	"github.com/jamesainslie/creditscope/pkg/credits/period"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// Status is the overall severity indicator shown next to the alerts
// heading.
type Status string

// Overall status tokens, ordered High > Medium > Low.
const (
	StatusNone   Status = "none"
	StatusHigh   Status = "high"
	StatusMedium Status = "medium"
	StatusLow    Status = "low"
)

// Active returns the alerts that are not mitigated and whose date falls
// inside the given period, in their original order.
func Active(all []types.Alert, r *period.Resolver, p period.Period) []types.Alert {
	var out []types.Alert
	for _, a := range all {
		if a.Mitigated {
			continue
		}
		if !r.Contains(a.DateValue, p) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Overall derives the status token for a set of active alerts: none when
// the set is empty, otherwise the highest severity present.
func Overall(active []types.Alert) Status {
	if len(active) == 0 {
		return StatusNone
	}

	status := StatusLow
	for _, a := range active {
		switch a.Severity {
		case types.SeverityHigh:
			return StatusHigh
		case types.SeverityMedium:
			status = StatusMedium
		}
	}
	return status
}

// Mitigate returns a new alert set identical to the input except that the
// alert with the given id has Mitigated set. An unknown id is a silent
// no-op. The input slice is never modified.
func Mitigate(all []types.Alert, id int) []types.Alert {
	out := make([]types.Alert, len(all))
	copy(out, all)
	for i := range out {
		if out[i].ID == id {
			out[i].Mitigated = true
		}
	}
	return out
}
