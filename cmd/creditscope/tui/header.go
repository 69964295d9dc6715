package tui

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/alerts"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// renderAppHeader renders the shared dashboard header.
// Parameters:
//   - orgID: the org the dashboard covers
//   - periodLabel: human label of the reporting window
//   - totalCredits: summed consumption across the window
//   - status: overall alert severity
//   - live: whether feed watching is active
func renderAppHeader(orgID, periodLabel string, totalCredits float64, status alerts.Status, live bool) string {
	icon := "📊"
	appName := titleStyle.Bold(true).Render("CREDITSCOPE")

	stats := mutedTextStyle.Render(fmt.Sprintf("  %s  •  %s  •  %s credits",
		orgID, periodLabel, types.FormatCredits(totalCredits, 2)))

	header := fmt.Sprintf(" %s %s%s", icon, appName, stats)

	if badge := alertBadge(status); badge != "" {
		header += "  " + badge
	}

	if live {
		header += successTextStyle.Render("  ● LIVE")
	}

	return header
}

// alertBadge renders the overall alert state, empty when there are none.
func alertBadge(status alerts.Status) string {
	switch status {
	case alerts.StatusHigh:
		return highSeverityStyle.Render("⚠ HIGH")
	case alerts.StatusMedium:
		return mediumSeverityStyle.Render("⚠ MEDIUM")
	case alerts.StatusLow:
		return lowSeverityStyle.Render("⚠ LOW")
	default:
		return ""
	}
}

// tabNames are the dashboard tabs in display order.
var tabNames = []string{"Chart", "Ledger", "Grouped", "Alerts"}

// renderTabBar renders the tab strip with the active tab highlighted.
func renderTabBar(active Tab) string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return " " + strings.Join(tabs, " ")
}

// renderKeyHints renders the context key hints for the active tab.
func renderKeyHints(active Tab, filtering bool) string {
	hint := func(key, desc string) string {
		return keyStyle.Render("["+key+"]") + " " + keyDescStyle.Render(desc)
	}

	common := []string{hint("1-4", "tabs"), hint("p", "period"), hint("q", "quit")}

	var extra []string
	switch active {
	case TabChart:
		extra = []string{hint("↑/↓", "move"), hint("enter", "drill into date")}
	case TabLedger:
		if filtering {
			return "  " + hint("enter", "apply filter") + "  " + hint("esc", "clear")
		}
		extra = []string{hint("/", "filter"), hint("a", "action"), hint("c", "connector"), hint("x", "reset")}
	case TabGrouped:
		extra = []string{hint("enter", "expand"), hint("e", "expand all"), hint("z", "collapse")}
	case TabAlerts:
		extra = []string{hint("↑/↓", "move"), hint("m", "mitigate")}
	}

	return "  " + strings.Join(append(extra, common...), "  ")
}
