// Package ledger derives the flat, UI-ready file-processing ledger from
// one aggregation scope's meter events. It clusters ingestion events into
// batches, pairs them with indexing events by filename, synthesizes
// indexing events for files that were never indexed, and computes
// per-event credit cost. Every derivation is pure: malformed input
// degrades to empty buckets and zero credits, never to an error.
package ledger

import (
	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

// connectorOrder is the fixed inference order. Output parity with the
// fixture dataset depends on this exact list and the exact hash below.
var connectorOrder = []types.ConnectorType{
	types.ConnectorGoogleDrive,
	types.ConnectorWebCrawler,
	types.ConnectorSharePoint,
}

// connectorNames maps each connector type to its instance name.
var connectorNames = map[types.ConnectorType]string{
	types.ConnectorGoogleDrive: "ACME Drive",
	types.ConnectorWebCrawler:  "ACME Website",
	types.ConnectorSharePoint:  "ACME Sharepoint",
}

// InferConnector deterministically assigns a connector to a file name:
// the sum of the name's code points modulo three indexes the fixed
// connector list. This doubles as a pseudo-random but stable assignment
// for fixture files without explicit connector metadata. Do not replace
// with a real hash function.
func InferConnector(fileName string) (types.ConnectorType, string) {
	sum := 0
	for _, r := range fileName {
		sum += int(r)
	}
	ct := connectorOrder[sum%len(connectorOrder)]
	return ct, connectorNames[ct]
}

// resolveConnector prefers the event's explicit connector metadata and
// falls back to hash inference.
func resolveConnector(ev types.FileEvent) (types.ConnectorType, string) {
	ct, cn := ev.ConnectorType, ev.ConnectorName
	if ct == "" {
		inferred, inferredName := InferConnector(ev.FileName)
		ct = inferred
		if cn == "" {
			cn = inferredName
		}
	} else if cn == "" {
		cn = connectorNames[ct]
	}
	return ct, cn
}

// ingestionInfo records what an ingestion row established for a filename
// so the matching indexing row stays consistent with it.
type ingestionInfo struct {
	processingID  string
	connectorType types.ConnectorType
	connectorName string
	reason        types.UpdateReason
	row           int // index of the ingestion row in the output
}

// BuildLedger merges ingestion batches with the scope's indexing-meter
// events into flat ledger rows.
//
// Rows are emitted in three passes: every batch member becomes an
// Ingestion row (free, carrying the batch id); every indexing event
// becomes an Indexing row costing sizeMB x CreditsPerMB, reusing the
// ingestion row's processing id and reason when the filename was ingested
// in scope; finally, every ingested filename with no indexing event gets
// a synthesized Indexing row one hour after its ingestion time.
func BuildLedger(batches []*Batch, indexing []types.FileEvent, gen IDGenerator) []types.LedgerRow {
	var rows []types.LedgerRow

	ingested := make(map[string]ingestionInfo)
	var ingestedOrder []string

	for _, b := range batches {
		for _, ev := range b.Files {
			ct, cn := resolveConnector(ev)

			if _, seen := ingested[ev.FileName]; !seen {
				ingestedOrder = append(ingestedOrder, ev.FileName)
			}
			ingested[ev.FileName] = ingestionInfo{
				processingID:  b.ID,
				connectorType: ct,
				connectorName: cn,
				reason:        ev.Reason,
				row:           len(rows),
			}

			rows = append(rows, types.LedgerRow{
				FileName:      ev.FileName,
				FileType:      ev.FileType,
				Action:        types.ActionIngestion,
				Time:          ev.UpdateTime,
				SizeMB:        types.ParseSizeMB(ev.SizeMB),
				Reason:        ev.Reason,
				ConnectorType: ct,
				ConnectorName: cn,
				ProcessingID:  b.ID,
				Credits:       nil,
			})
		}
	}

	indexed := make(map[string]bool)
	for _, ev := range indexing {
		sizeMB := types.ParseSizeMB(ev.SizeMB)
		ct, cn := resolveConnector(ev)

		processingID := ""
		reason := ev.Reason
		if info, ok := ingested[ev.FileName]; ok {
			// Reuse the ingestion id and reason so the pair for one
			// filename stays consistent across the two meters.
			processingID = info.processingID
			reason = info.reason
		} else {
			processingID = gen.Next()
		}

		indexed[ev.FileName] = true

		rows = append(rows, types.LedgerRow{
			FileName:      ev.FileName,
			FileType:      ev.FileType,
			Action:        types.ActionIndexing,
			Time:          ev.UpdateTime,
			SizeMB:        sizeMB,
			Reason:        reason,
			ConnectorType: ct,
			ConnectorName: cn,
			ProcessingID:  processingID,
			Credits:       types.Ptr(types.IndexingCredits(sizeMB)),
		})
	}

	// Files that were ingested but never indexed in scope still cost
	// indexing credits eventually; synthesize the missing event an hour
	// after ingestion.
	for _, fileName := range ingestedOrder {
		if indexed[fileName] {
			continue
		}
		info := ingested[fileName]
		src := rows[info.row]

		rows = append(rows, types.LedgerRow{
			FileName:      fileName,
			FileType:      src.FileType,
			Action:        types.ActionIndexing,
			Time:          PlusOneHour(src.Time),
			SizeMB:        src.SizeMB,
			Reason:        src.Reason,
			ConnectorType: src.ConnectorType,
			ConnectorName: src.ConnectorName,
			ProcessingID:  info.processingID,
			Credits:       types.Ptr(types.IndexingCredits(src.SizeMB)),
		})
	}

	return rows
}

// Derive runs batch grouping and reconciliation over one scope's meter
// events, returning the flat ledger.
func Derive(m types.MeterEvents, gen IDGenerator) []types.LedgerRow {
	return BuildLedger(GroupIngestions(m.Ingestion, gen), m.Indexing, gen)
}

// GroupByProcessing reorders ledger rows so that rows sharing a
// processing id are contiguous (groups in first-seen order) and, within a
// group, a filename's Ingestion row precedes its Indexing row. This is
// the default presentation order of the flat ledger view.
func GroupByProcessing(rows []types.LedgerRow) []types.LedgerRow {
	groups := make(map[string][]types.LedgerRow)
	var order []string

	for _, row := range rows {
		id := row.ProcessingID
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], row)
	}

	out := make([]types.LedgerRow, 0, len(rows))
	for _, id := range order {
		group := groups[id]
		// Stable pairwise fix-up: ingestion before indexing for the
		// same filename, everything else keeps its relative order.
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if group[i].FileName == group[j].FileName &&
					group[i].Action == types.ActionIndexing &&
					group[j].Action == types.ActionIngestion {
					group[i], group[j] = group[j], group[i]
				}
			}
		}
		out = append(out, group...)
	}

	return out
}
