package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/creditscope/pkg/credits/alerts"
	"github.com/jamesainslie/creditscope/pkg/credits/logging"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

var alertsAll bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List consumption alerts",
	Long: `List the consumption alerts for the configured org.

By default only active alerts are shown: unmitigated alerts whose date
falls inside the reporting window. Use --all to include mitigated and
out-of-window alerts.`,
	Args: cobra.NoArgs,
	RunE: runAlerts,
}

func init() {
	alertsCmd.Flags().BoolVarP(&alertsAll, "all", "a", false, "include mitigated and out-of-window alerts")
	rootCmd.AddCommand(alertsCmd)
}

// runAlerts handles the alerts subcommand.
func runAlerts(_ *cobra.Command, _ []string) error {
	if err := initAppLogging(false); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	f, _, err := loadDashboardFeed()
	if err != nil {
		return err
	}

	resolver, err := buildResolver()
	if err != nil {
		return err
	}

	p := currentPeriod()
	list := f.Alerts
	if !alertsAll {
		list = alerts.Active(f.Alerts, resolver, p)
	}

	if len(list) == 0 {
		printInfo("No alerts for %s.", p.Label())
		return nil
	}

	status := alerts.Overall(alerts.Active(f.Alerts, resolver, p))
	printInfo("Overall status: %s", status)
	printInfo("")

	for _, a := range list {
		flag := " "
		if a.Mitigated {
			flag = "mitigated"
		}
		fmt.Printf("  [%-6s] #%d %s (%s) %s\n", severityTag(a.Severity), a.ID, a.Description, a.Date, flag)
	}

	return nil
}

// severityTag renders a short severity marker for plain text output.
func severityTag(s types.Severity) string {
	switch s {
	case types.SeverityHigh:
		return "high"
	case types.SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}
