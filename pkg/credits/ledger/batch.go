package ledger

import (
	"sort"
	"strings"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// GroupingWindowMinutes is how close (in minutes) to a batch's anchor an
// ingestion event must be to join that batch.
const GroupingWindowMinutes = 30

// Batch is a group of files ingested together in one flow. All members
// share a calendar day and fall within GroupingWindowMinutes of the
// anchor, which is the first file assigned to the batch.
type Batch struct {
	// ID is the generated processing id shared by every member.
	ID string

	// AnchorTime is the raw timestamp of the batch's first file.
	AnchorTime string

	// Files are the member events in assignment order.
	Files []types.FileEvent
}

// GroupIngestions clusters ingestion-meter events into batches. Events
// are sorted by (day, minute offset) with the original relative order
// preserved for equal timestamps, then assigned greedily: each event
// joins the first existing batch (in creation order) whose anchor shares
// its day and lies within the grouping window, otherwise it starts a new
// batch with a fresh id.
//
// The single greedy pass is not globally optimal: a file 31 minutes after
// an anchor starts a new batch even if an intermediate file could have
// bridged the two. That mirrors how afternoon deliveries actually arrive
// and is intentional.
func GroupIngestions(events []types.FileEvent, gen IDGenerator) []*Batch {
	sorted := make([]types.FileEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := ParseClock(sorted[i].UpdateTime), ParseClock(sorted[j].UpdateTime)
		if a.DayKey != b.DayKey {
			return strings.Compare(a.DayKey, b.DayKey) < 0
		}
		return a.Minutes < b.Minutes
	})

	var batches []*Batch
	for _, ev := range sorted {
		stamp := ParseClock(ev.UpdateTime)

		var assigned *Batch
		for _, b := range batches {
			anchor := ParseClock(b.AnchorTime)
			if anchor.DayKey == stamp.DayKey && abs(stamp.Minutes-anchor.Minutes) <= GroupingWindowMinutes {
				assigned = b
				break
			}
		}

		if assigned == nil {
			assigned = &Batch{ID: gen.Next(), AnchorTime: ev.UpdateTime}
			batches = append(batches, assigned)
		}
		assigned.Files = append(assigned.Files, ev)
	}

	return batches
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
