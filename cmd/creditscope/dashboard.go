package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/creditscope/cmd/creditscope/tui"
	"github.com/jamesainslie/creditscope/pkg/credits/aggregate"
	"github.com/jamesainslie/creditscope/pkg/credits/alerts"
	"github.com/jamesainslie/creditscope/pkg/credits/config"
	"github.com/jamesainslie/creditscope/pkg/credits/feed"
	"github.com/jamesainslie/creditscope/pkg/credits/ledger"
	"github.com/jamesainslie/creditscope/pkg/credits/logging"
	"github.com/jamesainslie/creditscope/pkg/credits/output"
	"github.com/jamesainslie/creditscope/pkg/credits/period"
)

// runDashboard is the root command handler. It launches the interactive
// dashboard unless a text output mode was requested.
func runDashboard(_ *cobra.Command, _ []string) error {
	noInteractive := viper.GetBool("no_interactive")
	outFormat := viper.GetString("format")

	// An explicit non-pretty format implies non-interactive mode.
	if outFormat != "" && outFormat != "pretty" {
		noInteractive = true
	}

	if noInteractive {
		if err := initAppLogging(false); err != nil {
			return err
		}
		defer func() { _ = logging.Close() }()
		return runReport("")
	}

	if err := initAppLogging(true); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	f, watchPath, err := loadDashboardFeed()
	if err != nil {
		return err
	}

	resolver, err := buildResolver()
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Feed:      f,
		OrgID:     viper.GetString("org_id"),
		Period:    currentPeriod(),
		Resolver:  resolver,
		WatchPath: watchPath,
	})
}

// loadDashboardFeed loads the configured feed, falling back to the
// embedded dataset. The second return is the path to watch for reloads,
// empty when watching is disabled or the embedded feed is in use.
func loadDashboardFeed() (*feed.Feed, string, error) {
	feedPath := viper.GetString("feed_path")
	if feedPath == "" {
		printVerbose("Using embedded demo dataset")
		return feed.Default(), "", nil
	}

	expanded, err := config.ExpandPath(feedPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to expand feed path: %w", err)
	}

	f, err := feed.Load(expanded)
	if err != nil {
		return nil, "", err
	}

	printVerbose("Loaded feed %s (%d dates)", expanded, len(f.Events))

	if viper.GetBool("watch") {
		return f, expanded, nil
	}
	return f, "", nil
}

// buildResolver constructs the date resolver, honoring a --today override.
func buildResolver() (*period.Resolver, error) {
	today := viper.GetString("today")
	if today == "" {
		return period.NewResolver(nil), nil
	}

	t, err := period.ParseDateKey(today)
	if err != nil {
		return nil, fmt.Errorf("invalid --today value %q (want M/D/YYYY): %w", today, err)
	}
	return period.NewResolver(func() time.Time { return t }), nil
}

// currentPeriod resolves the configured reporting window.
func currentPeriod() period.Period {
	p, err := period.Parse(viper.GetString("period"))
	if err != nil {
		printVerbose("Unknown period %q, using %s", viper.GetString("period"), period.Default)
	}
	if p == period.Custom {
		printInfo("Custom date ranges are not implemented; showing the last 90 days.")
	}
	return p
}

// initAppLogging initializes logging from config plus CLI flags.
func initAppLogging(tuiMode bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Components: cfg.Logging.Components,
		TUIMode:    tuiMode,
	}
	if getVerbose() {
		logCfg.Level = "debug"
	}
	if !tuiMode {
		logCfg.ConsoleLevel = cfg.Logging.ConsoleLevel
		if getVerbose() {
			logCfg.ConsoleLevel = "debug"
		}
	}

	if err := config.EnsureStateDir(); err != nil {
		return err
	}
	return logging.Init(logCfg)
}

// buildResult assembles the full report for the configured org and window.
// An empty selectedDate covers the whole period; otherwise the ledger is
// restricted to that single day.
func buildResult(f *feed.Feed, resolver *period.Resolver, p period.Period, selectedDate string) *output.Result {
	dates := resolver.Dates(p)
	series := aggregate.ChartSeries(f.Events, dates)
	events := aggregate.Collect(f.Events, dates, selectedDate)
	rows := ledger.Derive(events, ledger.NewRandomIDs())

	active := alerts.Active(f.Alerts, resolver, p)

	if selectedDate != "" {
		series = aggregate.ChartSeries(f.Events, []string{selectedDate})
	}
	points := output.PointsFromSeries(series)

	return &output.Result{
		OrgID:       viper.GetString("org_id"),
		Period:      p.Label(),
		Points:      points,
		Rows:        rows,
		Alerts:      active,
		AlertStatus: string(alerts.Overall(active)),
	}
}

// renderReport formats a result with the configured formatter and
// prints it to stdout.
func renderReport(res *output.Result) error {
	format := viper.GetString("format")
	if format == "" {
		format = config.DefaultFormat
	}

	formatter, err := output.Get(format)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, output.Available())
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, res); err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	fmt.Print(buf.String())
	return nil
}

// runReport produces the non-interactive report for the configured window.
func runReport(selectedDate string) error {
	f, _, err := loadDashboardFeed()
	if err != nil {
		return err
	}

	if selectedDate != "" && f.EventsFor(selectedDate).Empty() {
		printVerbose("No events recorded for %s", selectedDate)
	}

	resolver, err := buildResolver()
	if err != nil {
		return err
	}

	res := buildResult(f, resolver, currentPeriod(), selectedDate)
	logging.Get("report").Info("report built",
		"org", res.OrgID, "period", res.Period, "rows", len(res.Rows))

	return renderReport(res)
}
