// Package links integrates with the JobAd Links API, which aggregates ad
// links from job boards across the wider market rather than only the
// public employment service.
package links

import (
	"context"
	"fmt"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

const (
	defaultBaseURL  = "https://links.api.jobtechdev.se"
	defaultPageSize = 10
)

// Config defines JobAd Links client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client queries the cross-market link index.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates a JobAd Links API client.
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

// SearchParams describe a link search request.
type SearchParams struct {
	Query    string
	Location string
	Offset   int
	Limit    int
}

// SearchResult is a page of cross-market ad links.
type SearchResult struct {
	Total int      `json:"total"`
	Hits  []LinkAd `json:"hits"`
}

// LinkAd is an advertisement known only by its outbound links.
type LinkAd struct {
	ID              string       `json:"id"`
	Headline        string       `json:"headline"`
	Brief           string       `json:"brief"`
	OccupationGroup string       `json:"occupation_group"`
	SourceLinks     []SourceLink `json:"source_links"`
}

// SourceLink points at the originating job board.
type SourceLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Search queries aggregated ad links across job boards.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	u, err := fetch.BuildURL(c.baseURL, "/joblinks", fetch.Params{
		"q":      params.Query,
		"l":      params.Location,
		"offset": fetch.NonZero(params.Offset),
		"limit":  limit,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []LinkAd `json:"hits"`
	}
	if err := c.fetcher.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("links: search: %w", err)
	}

	return &SearchResult{Total: payload.Total.Value, Hits: payload.Hits}, nil
}
