// Package period resolves named reporting windows (24h, 7d, 30d, 90d,
// custom) into concrete calendar date ranges. All resolution is anchored
// to an injectable reference clock so the dashboard renders the same
// window for the same inputs.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a named reporting time window.
type Period string

// Supported period tokens.
const (
	Last24Hours Period = "24h"
	Last7Days   Period = "7d"
	Last30Days  Period = "30d"
	Last90Days  Period = "90d"
	Custom      Period = "custom"
)

// Default is the window used when no (or an unknown) period is given.
const Default = Last90Days

// ErrInvalidPeriod indicates that a period token could not be parsed.
var ErrInvalidPeriod = errors.New("invalid period")

// Parse parses a string into a Period. Valid values are "24h", "7d",
// "30d", "90d", and "custom" (case-insensitive). Callers that prefer a
// lenient fallback can ignore the error and use Default.
func Parse(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case Last24Hours:
		return Last24Hours, nil
	case Last7Days:
		return Last7Days, nil
	case Last30Days:
		return Last30Days, nil
	case Last90Days:
		return Last90Days, nil
	case Custom:
		return Custom, nil
	default:
		return Default, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// Days returns the number of calendar days the period covers. A custom
// period behaves as 90 days until a concrete range picker exists.
// Unknown tokens fall back to the default window.
func (p Period) Days() int {
	switch p {
	case Last24Hours:
		return 1
	case Last7Days:
		return 7
	case Last30Days:
		return 30
	case Last90Days, Custom:
		return 90
	default:
		return 90
	}
}

// Label returns the human-readable window description.
func (p Period) Label() string {
	switch p {
	case Last24Hours:
		return "Last 24 hours"
	case Last7Days:
		return "Last 7 days"
	case Last30Days:
		return "Last 30 days"
	case Last90Days:
		return "Last 90 days"
	case Custom:
		return "Custom period"
	default:
		return string(p)
	}
}

// DefaultReference is the fixed "today" the fixture dataset was authored
// against. The Resolver uses it when no clock is injected.
var DefaultReference = time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

// Resolver maps periods to date lists and ranges relative to a reference
// clock.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a Resolver using the given clock. A nil clock
// anchors every window at DefaultReference.
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = func() time.Time { return DefaultReference }
	}
	return &Resolver{now: now}
}

// Today returns the reference date truncated to the start of day.
func (r *Resolver) Today() time.Time {
	return startOfDay(r.now())
}

// Dates returns the period's consecutive calendar dates oldest to newest.
// The newest date is always the reference today, so the list length is
// exactly p.Days().
func (r *Resolver) Dates(p Period) []string {
	days := p.Days()
	today := r.Today()

	dates := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, FormatDateKey(today.AddDate(0, 0, -i)))
	}
	return dates
}

// Range returns the inclusive [start, end] day range for the period
// ending at today. The start is normalized to 00:00:00 of today minus
// p.Days() days and the end to the last instant of today, matching the
// containment rule used for alert filtering.
func (r *Resolver) Range(p Period) (start, end time.Time) {
	today := r.Today()
	start = today.AddDate(0, 0, -p.Days())
	end = today.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// Contains reports whether the given M/D/YYYY date value falls inside the
// period's range, inclusive at both endpoints. Malformed date values are
// never in range.
func (r *Resolver) Contains(dateValue string, p Period) bool {
	day, err := ParseDateKey(dateValue)
	if err != nil {
		return false
	}
	start, end := r.Range(p)
	return !day.Before(start) && !day.After(end)
}

// FormatDateKey renders a date in the feed's locale style: month, day,
// and year with no zero padding, e.g. "9/5/2025".
func FormatDateKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// ParseDateKey parses an M/D/YYYY date value as produced by
// FormatDateKey. Leading zeros are accepted.
func ParseDateKey(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date value %q", s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date value %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date value %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date value %q: %w", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date value %q", s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
