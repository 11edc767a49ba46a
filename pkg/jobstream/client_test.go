package jobstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamFixture = `[
	{
		"id": "24025",
		"headline": "Sjuksköterska till akuten",
		"timestamp": "2026-03-01T09:30:00",
		"occupation": {"concept_id": "NYW6_mP6_vwf", "label": "Sjuksköterska, grundutbildad"},
		"workplace_address": {"municipality": "Stockholm"}
	},
	{
		"id": "24011",
		"removed": true,
		"removed_date": "2026-03-01T10:00:00"
	}
]`

func TestChanges_MapsParamsAndEvents(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stream", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(streamFixture))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	events, err := client.Changes(context.Background(), ChangesParams{
		Since:                time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		OccupationConceptIDs: []string{"NYW6_mP6_vwf", "Z8ci_bBE_tmx"},
	})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "Sjuksköterska till akuten", events[0].Headline)
	assert.Equal(t, "Sjuksköterska, grundutbildad", events[0].Occupation.Label)
	assert.True(t, events[1].Removed)
	assert.Equal(t, "2026-03-01T10:00:00", events[1].RemovedDate)

	assert.Equal(t, []string{"2026-03-01T00:00:00Z"}, gotQuery["date"])
	assert.Equal(t, []string{"NYW6_mP6_vwf", "Z8ci_bBE_tmx"}, gotQuery["occupation-concept-id"])
	assert.NotContains(t, gotQuery, "updated-before-date", "zero time means absent")
	assert.NotContains(t, gotQuery, "location-concept-id")
}

func TestChanges_RequiresSince(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.Changes(context.Background(), ChangesParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "since timestamp is required")
}

func TestSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/snapshot", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(streamFixture))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	events, err := client.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
