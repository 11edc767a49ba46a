// Package jobsearch integrates with the JobSearch API, the primary index
// of currently published job advertisements.
package jobsearch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

const (
	defaultBaseURL  = "https://jobsearch.api.jobtechdev.se"
	defaultPageSize = 10
)

// Config defines JobSearch client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client queries the JobSearch API.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates a JobSearch API client.
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

// Search queries published ads with free text and structured filters.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	u, err := fetch.BuildURL(c.baseURL, "/search", fetch.Params{
		"q":                params.Query,
		"municipality":     params.Municipalities,
		"region":           params.Regions,
		"occupation-group": params.OccupationGroups,
		"employer":         params.Employer,
		"remote":           params.Remote,
		"published-after":  params.PublishedAfter,
		"offset":           fetch.NonZero(params.Offset),
		"limit":            limit,
	})
	if err != nil {
		return nil, err
	}

	var payload searchResponse
	if err := c.fetcher.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("jobsearch: search: %w", err)
	}

	return &SearchResult{Total: payload.Total.Value, Hits: payload.Hits}, nil
}

// GetAd fetches a single advertisement by its id.
func (c *Client) GetAd(ctx context.Context, id string) (*Ad, error) {
	if id == "" {
		return nil, fmt.Errorf("jobsearch: ad id is required")
	}

	u, err := fetch.BuildURL(c.baseURL, "/ad/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var ad Ad
	if err := c.fetcher.GetJSON(ctx, u, &ad); err != nil {
		return nil, fmt.Errorf("jobsearch: get ad %s: %w", id, err)
	}

	return &ad, nil
}

// Complete returns typeahead suggestions for a partial query.
func (c *Client) Complete(ctx context.Context, query string, limit int) (*CompleteResult, error) {
	if query == "" {
		return nil, fmt.Errorf("jobsearch: query is required")
	}

	u, err := fetch.BuildURL(c.baseURL, "/complete", fetch.Params{
		"q":     query,
		"limit": fetch.NonZero(limit),
	})
	if err != nil {
		return nil, err
	}

	var out CompleteResult
	if err := c.fetcher.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("jobsearch: complete: %w", err)
	}

	return &out, nil
}
