package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/creditscope/pkg/credits/logging"
	"github.com/jamesainslie/creditscope/pkg/credits/period"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a consumption report",
	Long: `Print the consumption report for the configured org and period
without launching the dashboard.

The report covers every date in the reporting window. Use --date to
restrict the ledger to a single day.

Examples:
  creditscope report                       # Whole period, pretty output
  creditscope report -o json               # Whole period as JSON
  creditscope report --date 10/31/2025     # One day's ledger
  creditscope report -p 7d -o tsv          # Last 7 days as TSV`,
	Args: cobra.NoArgs,
	RunE: runReportCmd,
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "restrict the ledger to one date (M/D/YYYY)")
	rootCmd.AddCommand(reportCmd)
}

// runReportCmd handles the report subcommand.
func runReportCmd(_ *cobra.Command, _ []string) error {
	if reportDate != "" {
		if _, err := period.ParseDateKey(reportDate); err != nil {
			return fmt.Errorf("invalid --date value %q (want M/D/YYYY): %w", reportDate, err)
		}
	}

	if err := initAppLogging(false); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	return runReport(reportDate)
}
