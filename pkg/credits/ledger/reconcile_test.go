package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

func TestInferConnector_PureFunctionOfName(t *testing.T) {
	ct1, cn1 := InferConnector("User manual.pdf")
	for i := 0; i < 10; i++ {
		ct, cn := InferConnector("User manual.pdf")
		require.Equal(t, ct1, ct, "connector type must be stable across calls")
		require.Equal(t, cn1, cn)
	}

	// Sum of code points of "User manual.pdf" is 1445; 1445 mod 3 == 2.
	assert.Equal(t, types.ConnectorSharePoint, ct1)
	assert.Equal(t, "ACME Sharepoint", cn1)
}

func TestInferConnector_CoversAllTypes(t *testing.T) {
	seen := make(map[types.ConnectorType]bool)
	for _, name := range []string{"a", "b", "c"} {
		ct, _ := InferConnector(name)
		seen[ct] = true
	}
	assert.Len(t, seen, 3, "consecutive code points should hit all three connectors")
}

func TestDerive_PairedFileSharesIDAndReason(t *testing.T) {
	m := types.MeterEvents{
		Ingestion: []types.FileEvent{
			{FileName: "report.pdf", FileType: "PDF", UpdateTime: "September 5 10:00", Reason: types.ReasonAdded, SizeMB: "24.5"},
		},
		Indexing: []types.FileEvent{
			{FileName: "report.pdf", FileType: "PDF", UpdateTime: "September 5 13:33", Reason: types.ReasonUpdated, SizeMB: "24.5"},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 2)

	ingestion, indexing := rows[0], rows[1]
	assert.Equal(t, types.ActionIngestion, ingestion.Action)
	assert.Equal(t, types.ActionIndexing, indexing.Action)

	assert.Equal(t, ingestion.ProcessingID, indexing.ProcessingID,
		"both meters' rows for one filename share one processing id")
	assert.Equal(t, types.ReasonAdded, indexing.Reason,
		"the ingestion reason wins for consistency across meters")

	assert.Nil(t, ingestion.Credits, "ingestion is free")
	require.NotNil(t, indexing.Credits)
	assert.InDelta(t, 1470.0, *indexing.Credits, 1e-9)
}

func TestDerive_SynthesizesMissingIndexing(t *testing.T) {
	m := types.MeterEvents{
		Ingestion: []types.FileEvent{
			{FileName: "orphan.pdf", FileType: "PDF", UpdateTime: "September 5 10:00", Reason: types.ReasonAdded, SizeMB: "12.0"},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 2)

	synth := rows[1]
	assert.Equal(t, types.ActionIndexing, synth.Action)
	assert.Equal(t, "September 5 11:00", synth.Time, "synthesized time is ingestion +1 hour")
	assert.Equal(t, rows[0].ProcessingID, synth.ProcessingID)
	assert.Equal(t, rows[0].Reason, synth.Reason)
	assert.Equal(t, rows[0].ConnectorType, synth.ConnectorType)
	assert.Equal(t, rows[0].ConnectorName, synth.ConnectorName)
	require.NotNil(t, synth.Credits)
	assert.InDelta(t, 720.0, *synth.Credits, 1e-9)
}

func TestDerive_SynthesizedTimeFallsBackToSuffix(t *testing.T) {
	m := types.MeterEvents{
		Ingestion: []types.FileEvent{
			{FileName: "odd.pdf", FileType: "PDF", UpdateTime: "whenever", Reason: types.ReasonAdded, SizeMB: "1.0"},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 2)
	assert.Equal(t, "whenever +1h", rows[1].Time)
}

func TestDerive_IndexingOnlyFileGetsFreshID(t *testing.T) {
	m := types.MeterEvents{
		Indexing: []types.FileEvent{
			{FileName: "direct.html", FileType: "HTML", UpdateTime: "September 5 09:00", Reason: types.ReasonUpdated, SizeMB: "10.0"},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 1)
	assert.Equal(t, types.ActionIndexing, rows[0].Action)
	assert.NotEmpty(t, rows[0].ProcessingID)
	assert.Equal(t, types.ReasonUpdated, rows[0].Reason, "own reason when never ingested")
}

func TestDerive_ExplicitConnectorWins(t *testing.T) {
	m := types.MeterEvents{
		Indexing: []types.FileEvent{
			{
				FileName:      "User manual.pdf",
				FileType:      "PDF",
				UpdateTime:    "September 5 13:33",
				Reason:        types.ReasonAdded,
				SizeMB:        "24.5",
				ConnectorType: types.ConnectorGoogleDrive,
				ConnectorName: "Engineering Drive",
			},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 1)
	assert.Equal(t, types.ConnectorGoogleDrive, rows[0].ConnectorType)
	assert.Equal(t, "Engineering Drive", rows[0].ConnectorName)
}

func TestDerive_ExplicitTypeWithoutNameUsesLookup(t *testing.T) {
	m := types.MeterEvents{
		Indexing: []types.FileEvent{
			{
				FileName:      "anything.pdf",
				FileType:      "PDF",
				UpdateTime:    "September 5 09:00",
				Reason:        types.ReasonAdded,
				SizeMB:        "1.0",
				ConnectorType: types.ConnectorWebCrawler,
			},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 1)
	assert.Equal(t, "ACME Website", rows[0].ConnectorName)
}

func TestDerive_NonNumericSizeCostsNothing(t *testing.T) {
	m := types.MeterEvents{
		Indexing: []types.FileEvent{
			{FileName: "bad.pdf", FileType: "PDF", UpdateTime: "September 5 09:00", Reason: types.ReasonAdded, SizeMB: "huge"},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Credits)
	assert.Zero(t, *rows[0].Credits)
	assert.Zero(t, rows[0].SizeMB)
}

func TestDerive_BatchOfThreeSharesOneID(t *testing.T) {
	// The reference scenario for 9/5/2025: three files ingested within a
	// half hour and indexed that afternoon.
	m := types.MeterEvents{
		Ingestion: []types.FileEvent{
			{FileName: "User manual.pdf", FileType: "PDF", UpdateTime: "September 5 10:00", Reason: types.ReasonAdded, SizeMB: "24.5"},
			{FileName: "Product catalog.html", FileType: "HTML", UpdateTime: "September 5 10:15", Reason: types.ReasonAdded, SizeMB: "18.2"},
			{FileName: "Customer data.png", FileType: "PNG", UpdateTime: "September 5 10:30", Reason: types.ReasonAdded, SizeMB: "32.8"},
		},
		Indexing: []types.FileEvent{
			{FileName: "User manual.pdf", FileType: "PDF", UpdateTime: "September 5 13:33", Reason: types.ReasonAdded, SizeMB: "24.5"},
			{FileName: "Product catalog.html", FileType: "HTML", UpdateTime: "September 5 14:15", Reason: types.ReasonAdded, SizeMB: "18.2"},
			{FileName: "Customer data.png", FileType: "PNG", UpdateTime: "September 5 15:42", Reason: types.ReasonUpdated, SizeMB: "32.8"},
		},
	}

	rows := Derive(m, NewSequence())
	require.Len(t, rows, 6)

	var ingestions, indexings []types.LedgerRow
	for _, r := range rows {
		if r.Action == types.ActionIngestion {
			ingestions = append(ingestions, r)
		} else {
			indexings = append(indexings, r)
		}
	}
	require.Len(t, ingestions, 3)
	require.Len(t, indexings, 3)

	batchID := ingestions[0].ProcessingID
	for _, r := range append(ingestions, indexings...) {
		assert.Equal(t, batchID, r.ProcessingID, "all six rows share the batch id")
	}

	wantCredits := []float64{1470, 1092, 1968}
	for i, r := range indexings {
		require.NotNil(t, r.Credits)
		assert.InDelta(t, wantCredits[i], *r.Credits, 1e-9)
	}
}

func TestGroupByProcessing_IngestionBeforeIndexingWithinGroup(t *testing.T) {
	m := types.MeterEvents{
		Ingestion: []types.FileEvent{
			{FileName: "a.pdf", FileType: "PDF", UpdateTime: "September 5 10:00", Reason: types.ReasonAdded, SizeMB: "1.0"},
			{FileName: "b.pdf", FileType: "PDF", UpdateTime: "September 5 11:00", Reason: types.ReasonAdded, SizeMB: "1.0"},
		},
		Indexing: []types.FileEvent{
			{FileName: "b.pdf", FileType: "PDF", UpdateTime: "September 5 12:00", Reason: types.ReasonAdded, SizeMB: "1.0"},
			{FileName: "a.pdf", FileType: "PDF", UpdateTime: "September 5 13:00", Reason: types.ReasonAdded, SizeMB: "1.0"},
		},
	}

	rows := GroupByProcessing(Derive(m, NewSequence()))
	require.Len(t, rows, 4)

	// Two batches (an hour apart), each contiguous with ingestion first.
	assert.Equal(t, "a.pdf", rows[0].FileName)
	assert.Equal(t, types.ActionIngestion, rows[0].Action)
	assert.Equal(t, "a.pdf", rows[1].FileName)
	assert.Equal(t, types.ActionIndexing, rows[1].Action)
	assert.Equal(t, "b.pdf", rows[2].FileName)
	assert.Equal(t, types.ActionIngestion, rows[2].Action)
	assert.Equal(t, "b.pdf", rows[3].FileName)
	assert.Equal(t, types.ActionIndexing, rows[3].Action)
}
