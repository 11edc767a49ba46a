// Package taxonomy integrates with the Taxonomy API, the controlled
// vocabulary of occupations, skills, and geographies that the other
// labour-market APIs reference by concept id.
package taxonomy

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
)

// ErrConceptNotFound is returned when a concept id matches nothing. The
// upstream answers with an empty list rather than a 404.
var ErrConceptNotFound = errors.New("taxonomy: concept not found")

const (
	defaultBaseURL = "https://taxonomy.api.jobtechdev.se"
	defaultLimit   = 10
)

// Config defines Taxonomy client settings.
type Config struct {
	BaseURL string
	Fetcher *fetch.Client
}

// Client queries the taxonomy.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// NewClient instantiates a Taxonomy API client.
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

// Concept is one entry in the controlled vocabulary.
type Concept struct {
	ID         string `json:"taxonomy/id"`
	Type       string `json:"taxonomy/type"`
	Label      string `json:"taxonomy/preferred-label"`
	Definition string `json:"taxonomy/definition"`
	Deprecated bool   `json:"taxonomy/deprecated"`
}

// ConceptGraph is a concept together with its immediate neighbourhood.
type ConceptGraph struct {
	Concept  Concept   `json:"concept"`
	Broader  []Concept `json:"broader"`
	Narrower []Concept `json:"narrower"`
	Related  []Concept `json:"related"`
}

// SearchParams describe a concept search.
type SearchParams struct {
	Query  string
	Type   string
	Offset int
	Limit  int
}

// SearchConcepts queries concepts by label fragment and optional type.
func (c *Client) SearchConcepts(ctx context.Context, params SearchParams) ([]Concept, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	u, err := fetch.BuildURL(c.baseURL, "/v1/taxonomy/main/concepts", fetch.Params{
		"preferred-label": params.Query,
		"type":            params.Type,
		"offset":          fetch.NonZero(params.Offset),
		"limit":           limit,
	})
	if err != nil {
		return nil, err
	}

	var concepts []Concept
	if err := c.fetcher.GetJSON(ctx, u, &concepts); err != nil {
		return nil, fmt.Errorf("taxonomy: search concepts: %w", err)
	}

	return concepts, nil
}

// GetConceptGraph fetches a concept and its broader, narrower, and related
// concepts. The four lookups run concurrently; if any of them fails the
// whole operation fails, there is no partial graph.
func (c *Client) GetConceptGraph(ctx context.Context, id string) (*ConceptGraph, error) {
	if id == "" {
		return nil, fmt.Errorf("taxonomy: concept id is required")
	}

	graph := &ConceptGraph{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		concepts, err := c.conceptsByFilter(gctx, fetch.Params{"id": id})
		if err != nil {
			return err
		}
		if len(concepts) == 0 {
			return ErrConceptNotFound
		}
		graph.Concept = concepts[0]
		return nil
	})

	for _, rel := range []struct {
		name string
		dst  *[]Concept
	}{
		{"broader", &graph.Broader},
		{"narrower", &graph.Narrower},
		{"related", &graph.Related},
	} {
		g.Go(func() error {
			concepts, err := c.conceptsByFilter(gctx, fetch.Params{
				"related-ids": id,
				"relation":    rel.name,
			})
			if err != nil {
				return err
			}
			*rel.dst = concepts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("taxonomy: concept graph for %s: %w", id, err)
	}

	return graph, nil
}

// ListTypes enumerates the concept types available in the taxonomy.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	u, err := fetch.BuildURL(c.baseURL, "/v1/taxonomy/main/concepts/types", nil)
	if err != nil {
		return nil, err
	}

	var types []string
	if err := c.fetcher.GetJSON(ctx, u, &types); err != nil {
		return nil, fmt.Errorf("taxonomy: list types: %w", err)
	}

	return types, nil
}

func (c *Client) conceptsByFilter(ctx context.Context, params fetch.Params) ([]Concept, error) {
	u, err := fetch.BuildURL(c.baseURL, "/v1/taxonomy/main/concepts", params)
	if err != nil {
		return nil, err
	}

	var concepts []Concept
	if err := c.fetcher.GetJSON(ctx, u, &concepts); err != nil {
		return nil, err
	}

	return concepts, nil
}
