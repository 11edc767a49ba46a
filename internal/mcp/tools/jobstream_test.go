package tools

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltehb/jobtech-mcp/pkg/jobstream"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

type fakeJobStreamAPI struct {
	events    []jobstream.Event
	err       error
	gotParams jobstream.ChangesParams
}

func (f *fakeJobStreamAPI) Changes(_ context.Context, params jobstream.ChangesParams) ([]jobstream.Event, error) {
	f.gotParams = params
	return f.events, f.err
}

func (f *fakeJobStreamAPI) Snapshot(_ context.Context) ([]jobstream.Event, error) {
	return f.events, f.err
}

func TestStreamChanges_InvalidSinceTimestamp(t *testing.T) {
	st := jobStreamTools{api: &fakeJobStreamAPI{}, logger: logging.NewNop()}

	res, payload, err := st.changes(context.Background(), nil, &StreamChangesParams{Since: "yesterday"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "RFC 3339")
	assert.Nil(t, payload)
}

func TestStreamChanges_ParsesTimestampsAndFormats(t *testing.T) {
	api := &fakeJobStreamAPI{events: []jobstream.Event{
		{ID: "a1", Headline: "Kock", Occupation: jobstream.ConceptRef{Label: "Kockar"}},
		{ID: "a2", Removed: true, RemovedDate: "2026-03-02T08:00:00Z"},
	}}
	st := jobStreamTools{api: api, logger: logging.NewNop()}

	res, payload, err := st.changes(context.Background(), nil, &StreamChangesParams{
		Since:         "2026-03-01T00:00:00Z",
		UpdatedBefore: "2026-03-03T00:00:00Z",
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	wantSince := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, api.gotParams.Since.Equal(wantSince))
	assert.False(t, api.gotParams.UpdatedBefore.IsZero())

	text := resultText(t, res)
	assert.Contains(t, text, "2 changed ads since 2026-03-01T00:00:00Z")
	assert.Contains(t, text, "a1 — Kock (Kockar)")
	assert.Contains(t, text, "[removed] a2 (removed 2026-03-02T08:00:00Z)")

	result, ok := payload.(StreamResult)
	require.True(t, ok)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Presented)
}

func TestStreamSnapshot_CapsPresentedEvents(t *testing.T) {
	events := make([]jobstream.Event, defaultEventCap+25)
	for i := range events {
		events[i] = jobstream.Event{ID: fmt.Sprintf("ad-%d", i)}
	}
	st := jobStreamTools{api: &fakeJobStreamAPI{events: events}, logger: logging.NewNop()}

	res, payload, err := st.snapshot(context.Background(), nil, &StreamSnapshotParams{})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	result, ok := payload.(StreamResult)
	require.True(t, ok)
	assert.Equal(t, defaultEventCap+25, result.Total)
	assert.Equal(t, defaultEventCap, result.Presented)
	assert.Len(t, result.Events, defaultEventCap)
}

func TestCapEvents_ExplicitMax(t *testing.T) {
	events := []jobstream.Event{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	result := capEvents(events, 2)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Presented)

	result = capEvents(events, 0)
	assert.Equal(t, 3, result.Presented, "zero means default cap, which exceeds the slice")
}

func TestStreamChanges_EmptyWindow(t *testing.T) {
	st := jobStreamTools{api: &fakeJobStreamAPI{}, logger: logging.NewNop()}

	res, _, err := st.changes(context.Background(), nil, &StreamChangesParams{Since: "2026-03-01T00:00:00Z"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "No job ad changes")
}
