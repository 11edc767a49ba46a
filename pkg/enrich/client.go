// Package enrich integrates with the JobAd Enrichments API, which extracts
// occupations, competencies, traits, and geography mentions from free text.
// This is the only upstream consumed over POST.
package enrich

import (
	"context"
	"fmt"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

const defaultBaseURL = "https://jobad-enrichments-api.jobtechdev.se"

// Config defines enrichment client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client calls the text enrichment API.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates an enrichment API client.
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

// Document is one input text to enrich.
type Document struct {
	ID       string `json:"doc_id"`
	Headline string `json:"doc_headline,omitempty"`
	Text     string `json:"doc_text"`
}

// EnrichedDocument carries the extracted candidates for one document.
type EnrichedDocument struct {
	ID         string `json:"doc_id"`
	Candidates struct {
		Occupations  []Candidate `json:"occupations"`
		Competencies []Candidate `json:"competencies"`
		Traits       []Candidate `json:"traits"`
		Geos         []Candidate `json:"geos"`
	} `json:"enriched_candidates"`
}

// Candidate is a single extracted concept with its model confidence.
type Candidate struct {
	Term       string  `json:"term"`
	Label      string  `json:"concept_label"`
	Prediction float64 `json:"prediction"`
}

type enrichRequest struct {
	Documents        []Document `json:"documents_input"`
	IncludeTermsInfo bool       `json:"include_terms_info"`
}

// EnrichText runs the enrichment model over a batch of documents.
func (c *Client) EnrichText(ctx context.Context, docs []Document, includeTerms bool) ([]EnrichedDocument, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("enrich: at least one document is required")
	}
	for i, doc := range docs {
		if doc.Text == "" {
			return nil, fmt.Errorf("enrich: document %d has no text", i)
		}
	}

	u, err := fetch.BuildURL(c.baseURL, "/enrichtextdocuments", nil)
	if err != nil {
		return nil, err
	}

	var out []EnrichedDocument
	body := enrichRequest{Documents: docs, IncludeTermsInfo: includeTerms}
	if err := c.fetcher.PostJSON(ctx, u, body, &out); err != nil {
		return nil, fmt.Errorf("enrich: enrich text documents: %w", err)
	}

	return out, nil
}
