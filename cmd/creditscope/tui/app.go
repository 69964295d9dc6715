package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jamesainslie/creditscope/pkg/credits/aggregate"
	"github.com/jamesainslie/creditscope/pkg/credits/alerts"
	"github.com/jamesainslie/creditscope/pkg/credits/feed"
	"github.com/jamesainslie/creditscope/pkg/credits/ledger"
	"github.com/jamesainslie/creditscope/pkg/credits/logging"
	"github.com/jamesainslie/creditscope/pkg/credits/period"
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// Tab identifies a dashboard view.
type Tab int

// Dashboard tabs in display order.
const (
	TabChart Tab = iota
	TabLedger
	TabGrouped
	TabAlerts
)

// periodCycle is the order the period key steps through.
var periodCycle = []period.Period{
	period.Last24Hours,
	period.Last7Days,
	period.Last30Days,
	period.Last90Days,
}

// Options configures the dashboard.
type Options struct {
	Feed      *feed.Feed
	OrgID     string
	Period    period.Period
	Resolver  *period.Resolver
	WatchPath string
}

// Model is the main Bubble Tea model for the creditscope dashboard.
type Model struct {
	options Options
	tab     Tab

	// Current dataset and derived state
	feed      *feed.Feed
	alertSet  []types.Alert
	mitigated map[int]bool // alert ids mitigated this session
	period    period.Period
	series    aggregate.Series
	status    alerts.Status

	// Sub-views
	chart      ChartModel
	ledgerView LedgerModel
	grouped    GroupedModel
	alertsView AlertsModel

	// Live reload state
	ctx        context.Context
	cancel     context.CancelFunc
	watcher    *feed.Watcher
	reloadChan chan *feed.Feed
	live       bool

	// Window dimensions
	width  int
	height int
}

// NewModel creates a new dashboard model with the given options.
func NewModel(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		options:    opts,
		tab:        TabChart,
		feed:       opts.Feed,
		alertSet:   opts.Feed.Alerts,
		mitigated:  make(map[int]bool),
		period:     opts.Period,
		chart:      NewChartModel(),
		ledgerView: NewLedgerModel(),
		grouped:    NewGroupedModel(),
		alertsView: NewAlertsModel(),
		ctx:        ctx,
		cancel:     cancel,
		reloadChan: make(chan *feed.Feed, 1),
		width:      80,
		height:     24,
	}
	m.refresh()
	return m
}

// Init initializes the model and starts feed watching when configured.
func (m Model) Init() tea.Cmd {
	if m.options.WatchPath == "" {
		return nil
	}
	return tea.Batch(m.startWatcher(), m.listenForReload())
}

// feedReloadMsg carries a freshly reloaded feed.
type feedReloadMsg struct {
	feed *feed.Feed
}

// watchStartedMsg reports the watcher starting, or failing to.
type watchStartedMsg struct {
	err error
}

// startWatcher begins watching the feed file for changes.
func (m Model) startWatcher() tea.Cmd {
	path := m.options.WatchPath
	reloadChan := m.reloadChan
	ctx := m.ctx

	return func() tea.Msg {
		w, err := feed.NewWatcher(path)
		if err != nil {
			return watchStartedMsg{err: err}
		}

		go w.Run(ctx, func(f *feed.Feed) {
			select {
			case reloadChan <- f:
			default:
				// A reload is already pending; newest feed wins next time.
			}
		})

		go func() {
			<-ctx.Done()
			_ = w.Close()
		}()

		return watchStartedMsg{}
	}
}

// listenForReload returns a command that waits for a reloaded feed.
func (m Model) listenForReload() tea.Cmd {
	reloadChan := m.reloadChan
	return func() tea.Msg {
		f, ok := <-reloadChan
		if !ok {
			return nil
		}
		return feedReloadMsg{feed: f}
	}
}

// refresh recomputes every derived view from the current feed,
// period, and chart selection.
func (m *Model) refresh() {
	dates := m.options.Resolver.Dates(m.period)
	m.series = aggregate.ChartSeries(m.feed.Events, dates)
	m.chart.SetSeries(m.series)

	events := aggregate.Collect(m.feed.Events, dates, m.chart.SelectedDate())
	rows := ledger.Derive(events, ledger.NewRandomIDs())
	m.ledgerView.SetRows(rows)
	m.grouped.SetRows(rows)

	active := alerts.Active(m.alertSet, m.options.Resolver, m.period)
	m.status = alerts.Overall(active)
	m.alertsView.SetAlerts(active)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chart.SetDimensions(msg.Width, msg.Height)
		m.ledgerView.SetDimensions(msg.Width, msg.Height)
		m.grouped.SetDimensions(msg.Width, msg.Height)
		m.alertsView.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case watchStartedMsg:
		if msg.err != nil {
			logging.Get("tui").Warn("feed watch unavailable", "error", msg.err)
			return m, nil
		}
		m.live = true
		return m, nil

	case feedReloadMsg:
		m.feed = msg.feed
		// Re-apply this session's mitigations to the fresh alert set.
		m.alertSet = msg.feed.Alerts
		for id := range m.mitigated {
			m.alertSet = alerts.Mitigate(m.alertSet, id)
		}
		m.refresh()
		logging.Get("tui").Info("dashboard refreshed from feed", "dates", len(msg.feed.Events))
		return m, m.listenForReload()
	}

	return m, nil
}

// handleKey handles keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The ledger filter input captures everything except ctrl+c.
	if m.tab == TabLedger && m.ledgerView.Filtering() {
		if key == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.ledgerView, cmd = m.ledgerView.Update(msg)
		return m, cmd
	}

	// Global keys
	switch key {
	case "ctrl+c", "q":
		m.cancel()
		return m, tea.Quit

	case "1":
		m.tab = TabChart
		return m, nil
	case "2":
		m.tab = TabLedger
		return m, nil
	case "3":
		m.tab = TabGrouped
		return m, nil
	case "4":
		m.tab = TabAlerts
		return m, nil

	case "tab":
		m.tab = (m.tab + 1) % 4
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + 3) % 4
		return m, nil

	case "p":
		m.period = nextPeriod(m.period)
		m.refresh()
		return m, nil
	}

	// Tab-specific keys
	switch m.tab {
	case TabChart:
		if m.chart.HandleKey(key) {
			// Date selection changed; recompute the ledger views.
			m.refresh()
		}

	case TabLedger:
		var cmd tea.Cmd
		m.ledgerView, cmd = m.ledgerView.Update(msg)
		return m, cmd

	case TabGrouped:
		m.grouped.HandleKey(key)

	case TabAlerts:
		if key == "m" {
			if a, ok := m.alertsView.CursorAlert(); ok {
				m.mitigated[a.ID] = true
				m.alertSet = alerts.Mitigate(m.alertSet, a.ID)
				m.refresh()
				logging.Get("tui").Info("alert mitigated", "id", a.ID)
			}
			return m, nil
		}
		m.alertsView.HandleKey(key)
	}

	return m, nil
}

// nextPeriod steps to the next reporting window. Custom periods fold
// into the standard cycle.
func nextPeriod(p period.Period) period.Period {
	for i, candidate := range periodCycle {
		if candidate == p {
			return periodCycle[(i+1)%len(periodCycle)]
		}
	}
	return periodCycle[0]
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(renderAppHeader(m.options.OrgID, m.period.Label(), m.series.TotalCredits(), m.status, m.live))
	b.WriteString("\n")
	b.WriteString(renderTabBar(m.tab))
	b.WriteString("\n")
	b.WriteString(renderDivider(m.width - 4))
	b.WriteString("\n")

	switch m.tab {
	case TabChart:
		b.WriteString(m.chart.View())
	case TabLedger:
		b.WriteString(m.ledgerView.View())
	case TabGrouped:
		b.WriteString(m.grouped.View())
	case TabAlerts:
		b.WriteString(m.alertsView.View())
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHints(m.tab, m.ledgerView.Filtering()))
	b.WriteString("\n")

	return outerBoxStyle.Width(m.width - 2).Render(b.String())
}

// Run starts the dashboard application.
func Run(opts Options) error {
	logging.Get("tui").Info("dashboard starting",
		"org", opts.OrgID, "period", string(opts.Period), "watch", opts.WatchPath != "")

	model := NewModel(opts)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
