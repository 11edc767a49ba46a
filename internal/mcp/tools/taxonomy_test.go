package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltehb/jobtech-mcp/pkg/logging"
	"github.com/maltehb/jobtech-mcp/pkg/taxonomy"
)

type fakeTaxonomyAPI struct {
	concepts []taxonomy.Concept
	graph    *taxonomy.ConceptGraph
	types    []string
	err      error
}

func (f *fakeTaxonomyAPI) SearchConcepts(_ context.Context, _ taxonomy.SearchParams) ([]taxonomy.Concept, error) {
	return f.concepts, f.err
}

func (f *fakeTaxonomyAPI) GetConceptGraph(_ context.Context, id string) (*taxonomy.ConceptGraph, error) {
	if f.err != nil {
		return nil, fmt.Errorf("taxonomy: concept graph for %s: %w", id, f.err)
	}
	return f.graph, nil
}

func (f *fakeTaxonomyAPI) ListTypes(_ context.Context) ([]string, error) {
	return f.types, f.err
}

func TestGetTaxonomyConcept_NotFound(t *testing.T) {
	tt := taxonomyTools{api: &fakeTaxonomyAPI{err: taxonomy.ErrConceptNotFound}, logger: logging.NewNop()}

	res, payload, err := tt.getConcept(context.Background(), nil, &GetTaxonomyConceptParams{ConceptID: "bogus"})
	require.NoError(t, err)
	assert.False(t, res.IsError, "an unknown concept is an empty result, not an error")
	assert.Contains(t, resultText(t, res), "No taxonomy concept with id bogus")
	assert.Nil(t, payload)
}

func TestGetTaxonomyConcept_FormatsNeighbourhood(t *testing.T) {
	graph := &taxonomy.ConceptGraph{
		Concept: taxonomy.Concept{
			ID:         "NYW6_mP6_vwf",
			Type:       "occupation-name",
			Label:      "Sjuksköterska, grundutbildad",
			Definition: "Legitimerad sjuksköterska utan specialistutbildning.",
		},
		Broader:  []taxonomy.Concept{{ID: "Z8ci_bBE_tmx", Label: "Grundutbildade sjuksköterskor"}},
		Narrower: nil,
		Related:  []taxonomy.Concept{{ID: "jUPX_pEn_fAb", Label: "Omvårdnad"}},
	}
	tt := taxonomyTools{api: &fakeTaxonomyAPI{graph: graph}, logger: logging.NewNop()}

	res, payload, err := tt.getConcept(context.Background(), nil, &GetTaxonomyConceptParams{ConceptID: "NYW6_mP6_vwf"})
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "Sjuksköterska, grundutbildad (occupation-name)")
	assert.Contains(t, text, "Legitimerad sjuksköterska")
	assert.Contains(t, text, "Broader:")
	assert.Contains(t, text, "Grundutbildade sjuksköterskor")
	assert.NotContains(t, text, "Narrower:", "empty relation lists are omitted")
	assert.Contains(t, text, "Related:")

	assert.Same(t, graph, payload)
}

func TestSearchTaxonomy_FormatsMatches(t *testing.T) {
	tt := taxonomyTools{api: &fakeTaxonomyAPI{concepts: []taxonomy.Concept{
		{ID: "abc", Type: "skill", Label: "Svetsning"},
	}}, logger: logging.NewNop()}

	res, _, err := tt.search(context.Background(), nil, &SearchTaxonomyParams{Query: "svets"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "Svetsning (skill) id: abc")
}

func TestSearchTaxonomy_NoMatches(t *testing.T) {
	tt := taxonomyTools{api: &fakeTaxonomyAPI{}, logger: logging.NewNop()}

	res, _, err := tt.search(context.Background(), nil, &SearchTaxonomyParams{Query: "x"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "No taxonomy concepts matched")
}

func TestListTaxonomyTypes(t *testing.T) {
	tt := taxonomyTools{api: &fakeTaxonomyAPI{types: []string{"occupation-name", "skill", "municipality"}}, logger: logging.NewNop()}

	res, payload, err := tt.listTypes(context.Background(), nil, &ListTaxonomyTypesParams{})
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "3 concept types:")
	assert.Contains(t, text, "- skill")

	types, ok := payload.([]string)
	require.True(t, ok)
	assert.Len(t, types, 3)
}
