// Package jobstream integrates with the JobStream API, which feeds every
// publication, update, and removal of job ads as an event stream.
package jobstream

import (
	"context"
	"fmt"
	"time"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

const defaultBaseURL = "https://jobstream.api.jobtechdev.se"

// Config defines JobStream client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client reads the JobStream event feed.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates a JobStream API client.
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

// ChangesParams bound a window of the event stream.
type ChangesParams struct {
	Since                time.Time
	UpdatedBefore        time.Time
	OccupationConceptIDs []string
	LocationConceptIDs   []string
}

// Changes lists ads published, updated, or unpublished since a timestamp.
func (c *Client) Changes(ctx context.Context, params ChangesParams) ([]Event, error) {
	if params.Since.IsZero() {
		return nil, fmt.Errorf("jobstream: a since timestamp is required")
	}

	u, err := fetch.BuildURL(c.baseURL, "/stream", fetch.Params{
		"date":                  params.Since,
		"updated-before-date":   params.UpdatedBefore,
		"occupation-concept-id": params.OccupationConceptIDs,
		"location-concept-id":   params.LocationConceptIDs,
	})
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := c.fetcher.GetJSON(ctx, u, &events); err != nil {
		return nil, fmt.Errorf("jobstream: changes: %w", err)
	}

	return events, nil
}

// Snapshot returns every currently published ad. The response can be very
// large; callers are expected to cap what they present.
func (c *Client) Snapshot(ctx context.Context) ([]Event, error) {
	u, err := fetch.BuildURL(c.baseURL, "/snapshot", nil)
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := c.fetcher.GetJSON(ctx, u, &events); err != nil {
		return nil, fmt.Errorf("jobstream: snapshot: %w", err)
	}

	return events, nil
}
