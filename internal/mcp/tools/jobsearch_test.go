package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
	"github.com/maltehb/jobtech-mcp/pkg/jobsearch"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

type fakeJobSearchAPI struct {
	searchResult *jobsearch.SearchResult
	searchErr    error
	ad           *jobsearch.Ad
	adErr        error
	gotParams    jobsearch.SearchParams
}

func (f *fakeJobSearchAPI) Search(_ context.Context, params jobsearch.SearchParams) (*jobsearch.SearchResult, error) {
	f.gotParams = params
	return f.searchResult, f.searchErr
}

func (f *fakeJobSearchAPI) GetAd(_ context.Context, _ string) (*jobsearch.Ad, error) {
	return f.ad, f.adErr
}

func (f *fakeJobSearchAPI) Complete(_ context.Context, _ string, _ int) (*jobsearch.CompleteResult, error) {
	return &jobsearch.CompleteResult{}, nil
}

func TestSearchJobs_FormatsHits(t *testing.T) {
	api := &fakeJobSearchAPI{
		searchResult: &jobsearch.SearchResult{
			Total: 124,
			Hits: []jobsearch.Ad{
				{
					ID:       "24025",
					Headline: "Sjuksköterska till akuten",
					Employer: jobsearch.Employer{Name: "Region Stockholm"},
					WorkplaceAddress: jobsearch.WorkplaceAddress{
						Municipality: "Stockholm",
					},
				},
			},
		},
	}
	tools := jobSearchTools{api: api, logger: logging.NewNop()}

	res, payload, err := tools.searchJobs(context.Background(), nil, &SearchJobsParams{Query: "sjuksköterska", Limit: 1})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Found 124 job ads")
	assert.Contains(t, text, "Sjuksköterska till akuten — Region Stockholm (Stockholm)")
	assert.Contains(t, text, "id: 24025")

	assert.Same(t, api.searchResult, payload)
	assert.Equal(t, "sjuksköterska", api.gotParams.Query)
}

func TestSearchJobs_EmptyResult(t *testing.T) {
	api := &fakeJobSearchAPI{searchResult: &jobsearch.SearchResult{}}
	tools := jobSearchTools{api: api, logger: logging.NewNop()}

	res, _, err := tools.searchJobs(context.Background(), nil, &SearchJobsParams{Query: "zzz"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "No job ads matched")
}

func TestSearchJobs_UpstreamFailureBecomesErrorResult(t *testing.T) {
	api := &fakeJobSearchAPI{searchErr: &fetch.Error{Kind: fetch.KindServer, Status: 503, URL: "u"}}
	tools := jobSearchTools{api: api, logger: logging.NewNop()}

	res, payload, err := tools.searchJobs(context.Background(), nil, &SearchJobsParams{Query: "x"})
	require.NoError(t, err, "upstream failures are reported in-band, not as protocol errors")
	assert.True(t, res.IsError)
	assert.Nil(t, payload)
}

func TestGetJobAd_NotFoundBecomesEmptyResult(t *testing.T) {
	api := &fakeJobSearchAPI{adErr: &fetch.Error{Kind: fetch.KindClient, Status: 404, URL: "u"}}
	tools := jobSearchTools{api: api, logger: logging.NewNop()}

	res, payload, err := tools.getJobAd(context.Background(), nil, &GetJobAdParams{ID: "gone"})
	require.NoError(t, err)
	assert.False(t, res.IsError, "a vanished ad is an empty result, not an error")
	assert.Contains(t, resultText(t, res), "No job ad found with id gone")
	assert.Nil(t, payload)
}

func TestGetJobAd_FormatsAd(t *testing.T) {
	api := &fakeJobSearchAPI{ad: &jobsearch.Ad{
		ID:          "1",
		Headline:    "Utvecklare",
		Employer:    jobsearch.Employer{Name: "Spotify"},
		WebpageURL:  "https://example.com/1",
		Description: jobsearch.Description{Text: "Go developer wanted."},
	}}
	tools := jobSearchTools{api: api, logger: logging.NewNop()}

	res, payload, err := tools.getJobAd(context.Background(), nil, &GetJobAdParams{ID: "1"})
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Contains(t, text, "Utvecklare")
	assert.Contains(t, text, "Go developer wanted.")
	assert.Same(t, api.ad, payload)
}
