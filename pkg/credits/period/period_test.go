package period

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{name: "24h", in: "24h", want: Last24Hours},
		{name: "7d", in: "7d", want: Last7Days},
		{name: "30d", in: "30d", want: Last30Days},
		{name: "90d", in: "90d", want: Last90Days},
		{name: "custom", in: "custom", want: Custom},
		{name: "uppercase", in: "30D", want: Last30Days},
		{name: "whitespace", in: " 7d ", want: Last7Days},
		{name: "unknown falls back to default", in: "1y", want: Default, wantErr: true},
		{name: "empty falls back to default", in: "", want: Default, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPeriod) {
				t.Errorf("error should wrap ErrInvalidPeriod, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDatesLengthAndAnchor(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		period Period
		want   int
	}{
		{Last24Hours, 1},
		{Last7Days, 7},
		{Last30Days, 30},
		{Last90Days, 90},
		{Custom, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			dates := r.Dates(tt.period)
			if len(dates) != tt.want {
				t.Fatalf("len(Dates(%s)) = %d, want %d", tt.period, len(dates), tt.want)
			}
			if got := dates[len(dates)-1]; got != "11/1/2025" {
				t.Errorf("last date = %q, want %q", got, "11/1/2025")
			}
		})
	}
}

func TestDatesConsecutive(t *testing.T) {
	r := NewResolver(nil)

	dates := r.Dates(Last7Days)
	want := []string{
		"10/26/2025", "10/27/2025", "10/28/2025", "10/29/2025",
		"10/30/2025", "10/31/2025", "11/1/2025",
	}
	for i, d := range want {
		if dates[i] != d {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], d)
		}
	}
}

func TestDatesWithInjectedClock(t *testing.T) {
	ref := time.Date(2024, time.March, 3, 15, 4, 5, 0, time.UTC)
	r := NewResolver(func() time.Time { return ref })

	dates := r.Dates(Last24Hours)
	if len(dates) != 1 || dates[0] != "3/3/2024" {
		t.Errorf("Dates(24h) = %v, want [3/3/2024]", dates)
	}
}

func TestContainsInclusiveBounds(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name      string
		dateValue string
		period    Period
		want      bool
	}{
		{name: "end bound inclusive", dateValue: "11/1/2025", period: Last7Days, want: true},
		{name: "start bound inclusive", dateValue: "10/25/2025", period: Last7Days, want: true},
		{name: "one day before start", dateValue: "10/24/2025", period: Last7Days, want: false},
		{name: "one day after end", dateValue: "11/2/2025", period: Last7Days, want: false},
		{name: "24h spans previous day", dateValue: "10/31/2025", period: Last24Hours, want: true},
		{name: "24h excludes two days ago", dateValue: "10/30/2025", period: Last24Hours, want: false},
		{name: "custom behaves as 90d", dateValue: "8/3/2025", period: Custom, want: true},
		{name: "90d excludes day before range", dateValue: "8/2/2025", period: Last90Days, want: false},
		{name: "malformed date", dateValue: "not-a-date", period: Last90Days, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.dateValue, tt.period); got != tt.want {
				t.Errorf("Contains(%q, %s) = %v, want %v", tt.dateValue, tt.period, got, tt.want)
			}
		})
	}
}

func TestCustomRangeEqualsNinetyDays(t *testing.T) {
	r := NewResolver(nil)

	cs, ce := r.Range(Custom)
	ns, ne := r.Range(Last90Days)
	if !cs.Equal(ns) || !ce.Equal(ne) {
		t.Errorf("custom range [%v, %v] != 90d range [%v, %v]", cs, ce, ns, ne)
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	in := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)
	key := FormatDateKey(in)
	if key != "9/5/2025" {
		t.Fatalf("FormatDateKey = %q, want 9/5/2025", key)
	}

	out, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey(%q) returned error: %v", key, err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestParseDateKeyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "10/31", "a/b/c", "13/1/2025", "0/1/2025"} {
		if _, err := ParseDateKey(in); err == nil {
			t.Errorf("ParseDateKey(%q) should fail", in)
		}
	}
}
