// Package aggregate folds the per-date feed into the collections the
// dashboard renders: per-meter event lists for a period or a single
// selected date, and the per-day credit series behind the bar chart.
// All functions are pure; they hold no state across calls.
package aggregate

import (
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// Collect returns the per-meter collections for an aggregation scope.
// With an empty selectedDate it unions every date's meter lists across
// the period in date order (plain concatenation, no de-duplication).
// With a selected date it passes that date's collections through
// unchanged; an unknown date yields empty collections.
func Collect(feed types.EventsByDate, dates []string, selectedDate string) types.MeterEvents {
	if selectedDate != "" {
		return feed[selectedDate]
	}

	var out types.MeterEvents
	for _, date := range dates {
		day := feed[date]
		out.Ingestion = append(out.Ingestion, day.Ingestion...)
		out.Indexing = append(out.Indexing, day.Indexing...)
	}
	return out
}

// Series holds the chart's per-date bar values. Indexing and Ingestion
// are parallel to Dates.
type Series struct {
	// Dates are the period's date keys, oldest first.
	Dates []string

	// Indexing is the per-date indexing credit total: sum of
	// sizeMB x CreditsPerMB over the date's indexing events.
	Indexing []float64

	// Ingestion is the per-date informational ingestion total:
	// event count x CreditsPerIngestion.
	Ingestion []float64
}

// ChartSeries computes the two bar series for the given dates. Dates
// with no feed entry contribute zero bars, keeping the series parallel
// to the date axis.
func ChartSeries(feed types.EventsByDate, dates []string) Series {
	s := Series{
		Dates:     dates,
		Indexing:  make([]float64, len(dates)),
		Ingestion: make([]float64, len(dates)),
	}

	for i, date := range dates {
		day := feed[date]

		var indexing float64
		for _, ev := range day.Indexing {
			indexing += types.IndexingCredits(types.ParseSizeMB(ev.SizeMB))
		}
		s.Indexing[i] = indexing
		s.Ingestion[i] = float64(len(day.Ingestion)) * types.CreditsPerIngestion
	}

	return s
}

// Total returns the stacked bar height for one date index.
func (s Series) Total(i int) float64 {
	return s.Indexing[i] + s.Ingestion[i]
}

// TotalCredits returns the sum of both series across the whole period,
// the headline "Credits Consumed" stat.
func (s Series) TotalCredits() float64 {
	var total float64
	for i := range s.Dates {
		total += s.Total(i)
	}
	return total
}

// MaxTotal returns the largest stacked bar height, used to scale the
// chart's vertical axis.
func (s Series) MaxTotal() float64 {
	var max float64
	for i := range s.Dates {
		if t := s.Total(i); t > max {
			max = t
		}
	}
	return max
}
