// Package historical integrates with the historical ads API, an archive of
// job advertisements going back to 2016. It shares the JobSearch response
// shape plus aggregation support.
package historical

import (
	"context"
	"fmt"
	"net/url"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
	"github.com/maltehb/jobtech-mcp/pkg/jobsearch"
)

const (
	defaultBaseURL  = "https://historical.api.jobtechdev.se"
	defaultPageSize = 10
)

// Config defines historical API client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client queries the historical ads archive.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates a historical ads API client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = fetch.New()
	}

	return &Client{baseURL: baseURL, fetcher: fetcher}
}

// SearchParams describe an archive search.
type SearchParams struct {
	Query  string
	From   string
	To     string
	Offset int
	Limit  int
}

// Search queries archived ads within a historical date range.
func (c *Client) Search(ctx context.Context, params SearchParams) (*jobsearch.SearchResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	u, err := fetch.BuildURL(c.baseURL, "/search", fetch.Params{
		"q":               params.Query,
		"historical-from": params.From,
		"historical-to":   params.To,
		"offset":          fetch.NonZero(params.Offset),
		"limit":           limit,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []jobsearch.Ad `json:"hits"`
	}
	if err := c.fetcher.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("historical: search: %w", err)
	}

	return &jobsearch.SearchResult{Total: payload.Total.Value, Hits: payload.Hits}, nil
}

// GetAd fetches a single archived advertisement by id.
func (c *Client) GetAd(ctx context.Context, id string) (*jobsearch.Ad, error) {
	if id == "" {
		return nil, fmt.Errorf("historical: ad id is required")
	}

	u, err := fetch.BuildURL(c.baseURL, "/ad/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var ad jobsearch.Ad
	if err := c.fetcher.GetJSON(ctx, u, &ad); err != nil {
		return nil, fmt.Errorf("historical: get ad %s: %w", id, err)
	}

	return &ad, nil
}

// StatsParams describe an aggregation over the archive.
type StatsParams struct {
	Query  string
	From   string
	To     string
	Fields []string
	Limit  int
}

// StatsResult groups term counts per requested aggregation field.
type StatsResult struct {
	Total int         `json:"total"`
	Stats []StatGroup `json:"stats"`
}

type StatGroup struct {
	Type   string      `json:"type"`
	Values []StatValue `json:"values"`
}

type StatValue struct {
	Term      string `json:"term"`
	ConceptID string `json:"concept_id"`
	Count     int    `json:"count"`
}

// Stats aggregates archived ads over taxonomy fields such as
// "occupation-name" or "municipality".
func (c *Client) Stats(ctx context.Context, params StatsParams) (*StatsResult, error) {
	if len(params.Fields) == 0 {
		return nil, fmt.Errorf("historical: at least one stats field is required")
	}

	u, err := fetch.BuildURL(c.baseURL, "/search", fetch.Params{
		"q":               params.Query,
		"historical-from": params.From,
		"historical-to":   params.To,
		"stats":           params.Fields,
		"stats.limit":     fetch.NonZero(params.Limit),
		// only aggregations are wanted, not the hits themselves
		"limit": 0,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Stats []StatGroup `json:"stats"`
	}
	if err := c.fetcher.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("historical: stats: %w", err)
	}

	return &StatsResult{Total: payload.Total.Value, Stats: payload.Stats}, nil
}
