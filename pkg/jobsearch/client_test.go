package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

const searchFixture = `{
	"total": {"value": 2},
	"hits": [
		{
			"id": "24025",
			"headline": "Sjuksköterska till akuten",
			"employer": {"name": "Region Stockholm"},
			"workplace_address": {"municipality": "Stockholm", "region": "Stockholms län"},
			"publication_date": "2024-03-01T08:00:00",
			"webpage_url": "https://arbetsformedlingen.se/platsbanken/annonser/24025",
			"description": {"text": "Vi söker en sjuksköterska..."}
		},
		{
			"id": "24026",
			"headline": "Nurse",
			"employer": {"name": "Capio"},
			"workplace_address": {"municipality": "Uppsala", "region": "Uppsala län"},
			"remote": true,
			"description": {"text": "..."}
		}
	]
}`

func TestSearch_MapsResponseAndParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	remote := true
	result, err := client.Search(context.Background(), SearchParams{
		Query:          "sjuksköterska",
		Municipalities: []string{"0180", "0380"},
		Remote:         &remote,
		Limit:          20,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Hits, 2)
	assert.Equal(t, "Sjuksköterska till akuten", result.Hits[0].Headline)
	assert.Equal(t, "Region Stockholm", result.Hits[0].Employer.Name)
	assert.Equal(t, "Stockholm", result.Hits[0].WorkplaceAddress.Municipality)
	assert.True(t, result.Hits[1].Remote)

	assert.Equal(t, []string{"sjuksköterska"}, gotQuery["q"])
	assert.Equal(t, []string{"0180", "0380"}, gotQuery["municipality"])
	assert.Equal(t, []string{"true"}, gotQuery["remote"])
	assert.Equal(t, []string{"20"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "offset")
	assert.NotContains(t, gotQuery, "employer")
}

func TestGetAd_EscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ad/24025", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"24025","headline":"Nurse"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	ad, err := client.GetAd(context.Background(), "24025")
	require.NoError(t, err)
	assert.Equal(t, "Nurse", ad.Headline)
}

func TestGetAd_NotFoundSurfacesTypedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.GetAd(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, fetch.IsNotFound(err))
}

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/complete", r.URL.Path)
		assert.Equal(t, "sjuk", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"typeahead":[{"value":"sjuksköterska","type":"occupation","occurrences":1800}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	result, err := client.Complete(context.Background(), "sjuk", 0)
	require.NoError(t, err)
	require.Len(t, result.Typeahead, 1)
	assert.Equal(t, "sjuksköterska", result.Typeahead[0].Value)
}

func TestSearch_RequiresNothingButDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"total":{"value":0},"hits":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	result, err := client.Search(context.Background(), SearchParams{Query: "x"})
	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Hits)
}
