package ledger

import (
	"fmt"
	"regexp"
	"strconv"
)

// clockPattern matches the feed's free-text timestamps,
// e.g. "September 5 10:00".
var clockPattern = regexp.MustCompile(`(\w+)\s+(\d+)\s+(\d+):(\d+)`)

// ClockStamp is a comparable form of a feed timestamp. DayKey is a plain
// month+day string bucket; it is intentionally not calendar-aware, so
// events on the same month/day of different years would share a bucket.
// The fixture feed never crosses years within one aggregation scope.
type ClockStamp struct {
	// DayKey is "<Month> <day>" with the day's leading zero stripped.
	DayKey string

	// Minutes is the offset from midnight, 0..1439.
	Minutes int
}

// ParseClock parses a feed timestamp into its grouping form. Unparseable
// input yields the zero ClockStamp rather than an error; callers tolerate
// the degenerate empty bucket so a malformed fixture never fails a render.
func ParseClock(s string) ClockStamp {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return ClockStamp{}
	}

	day, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])

	return ClockStamp{
		DayKey:  fmt.Sprintf("%s %d", m[1], day),
		Minutes: hour*60 + minute,
	}
}

// PlusOneHour shifts a feed timestamp one hour forward, wrapping at
// midnight and keeping the minute. It is used to synthesize an indexing
// time for files that were ingested but never indexed in scope. When the
// timestamp cannot be parsed the literal suffix " +1h" is appended
// instead of failing.
func PlusOneHour(s string) string {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return s + " +1h"
	}

	hour, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%s %s %02d:%s", m[1], m[2], (hour+1)%24, m[4])
}
