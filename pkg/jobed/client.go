// Package jobed integrates with the JobEd Connect API, which maps between
// educations and the occupations they prepare for.
package jobed

import (
	"context"
	"fmt"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

const (
	defaultBaseURL = "https://jobed-connect-api.jobtechdev.se"
	defaultLimit   = 10
)

// Config defines JobEd Connect client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client queries education/occupation matchings.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates a JobEd Connect API client.
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

// Occupation is an occupation matched against an education description.
type Occupation struct {
	ID         string  `json:"id"`
	Label      string  `json:"occupation_label"`
	Group      string  `json:"occupation_group_label"`
	Score      float64 `json:"score"`
	AdsCount   int     `json:"job_ads_count"`
	Forecast   string  `json:"prognosis"`
	Definition string  `json:"definition"`
}

// Education is an education program matched against an occupation.
type Education struct {
	ID          string  `json:"id"`
	Title       string  `json:"education_title"`
	Provider    string  `json:"education_provider"`
	Form        string  `json:"education_form"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// MatchOccupations ranks occupations against a free-text education
// description.
func (c *Client) MatchOccupations(ctx context.Context, educationDescription string, limit int) ([]Occupation, error) {
	if educationDescription == "" {
		return nil, fmt.Errorf("jobed: education description is required")
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	u, err := fetch.BuildURL(c.baseURL, "/v1/occupations/match-by-text", fetch.Params{
		"input-text": educationDescription,
		"limit":      limit,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		RelatedOccupations []Occupation `json:"related_occupations"`
	}
	if err := c.fetcher.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("jobed: match occupations: %w", err)
	}

	return payload.RelatedOccupations, nil
}

// MatchEducations ranks education programs that lead toward an occupation.
func (c *Client) MatchEducations(ctx context.Context, occupationID string, limit int) ([]Education, error) {
	if occupationID == "" {
		return nil, fmt.Errorf("jobed: occupation id is required")
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	u, err := fetch.BuildURL(c.baseURL, "/v1/educations", fetch.Params{
		"occupation-id": occupationID,
		"limit":         limit,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Educations []Education `json:"educations"`
	}
	if err := c.fetcher.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("jobed: match educations: %w", err)
	}

	return payload.Educations, nil
}
