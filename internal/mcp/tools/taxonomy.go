package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/logging"
	"github.com/maltehb/jobtech-mcp/pkg/taxonomy"
)

// TaxonomyAPI is the slice of the taxonomy client the tools need.
type TaxonomyAPI interface {
	SearchConcepts(ctx context.Context, params taxonomy.SearchParams) ([]taxonomy.Concept, error)
	GetConceptGraph(ctx context.Context, id string) (*taxonomy.ConceptGraph, error)
	ListTypes(ctx context.Context) ([]string, error)
}

// SearchTaxonomyParams defines the arguments for search_taxonomy.
type SearchTaxonomyParams struct {
	Query  string `json:"query" jsonschema:"Label fragment to search for"`
	Type   string `json:"type,omitempty" jsonschema:"Concept type filter, e.g. occupation-name or skill"`
	Offset int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Page size, default 10"`
}

// GetTaxonomyConceptParams defines the arguments for get_taxonomy_concept.
type GetTaxonomyConceptParams struct {
	ConceptID string `json:"concept_id" jsonschema:"Taxonomy concept id"`
}

// ListTaxonomyTypesParams defines the arguments for list_taxonomy_types.
type ListTaxonomyTypesParams struct{}

type taxonomyTools struct {
	api    TaxonomyAPI
	logger *logging.Logger
}

// RegisterTaxonomyTools installs the three taxonomy tools.
func RegisterTaxonomyTools(server *sdkmcp.Server, api TaxonomyAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: taxonomy client is required")
	}

	t := taxonomyTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_taxonomy",
		Description: "Search the labour-market taxonomy for occupations, skills, and other concepts",
		Annotations: readOnly("Search taxonomy concepts"),
	}, t.search)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_taxonomy_concept",
		Description: "Fetch a taxonomy concept with its broader, narrower, and related concepts",
		Annotations: readOnly("Get taxonomy concept"),
	}, t.getConcept)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_taxonomy_types",
		Description: "List the concept types available in the taxonomy",
		Annotations: readOnly("List taxonomy types"),
	}, t.listTypes)

	return nil
}

func (t taxonomyTools) search(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchTaxonomyParams) (*sdkmcp.CallToolResult, any, error) {
	concepts, err := t.api.SearchConcepts(ctx, taxonomy.SearchParams{
		Query:  params.Query,
		Type:   params.Type,
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return failure(t.logger, "search_taxonomy", err)
	}

	if len(concepts) == 0 {
		return textResult("No taxonomy concepts matched."), concepts, nil
	}

	var b strings.Builder
	b.WriteString("Matching concepts:\n")
	for _, c := range concepts {
		fmt.Fprintf(&b, "- %s (%s) id: %s\n", c.Label, c.Type, c.ID)
	}

	return textResult(b.String()), concepts, nil
}

func (t taxonomyTools) getConcept(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetTaxonomyConceptParams) (*sdkmcp.CallToolResult, any, error) {
	graph, err := t.api.GetConceptGraph(ctx, params.ConceptID)
	if errors.Is(err, taxonomy.ErrConceptNotFound) {
		return textResult(fmt.Sprintf("No taxonomy concept with id %s.", params.ConceptID)), nil, nil
	}
	if err != nil {
		return failure(t.logger, "get_taxonomy_concept", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", graph.Concept.Label, graph.Concept.Type)
	if graph.Concept.Definition != "" {
		fmt.Fprintf(&b, "%s\n", graph.Concept.Definition)
	}
	writeConceptList(&b, "Broader", graph.Broader)
	writeConceptList(&b, "Narrower", graph.Narrower)
	writeConceptList(&b, "Related", graph.Related)

	return textResult(b.String()), graph, nil
}

func (t taxonomyTools) listTypes(ctx context.Context, req *sdkmcp.CallToolRequest, params *ListTaxonomyTypesParams) (*sdkmcp.CallToolResult, any, error) {
	types, err := t.api.ListTypes(ctx)
	if err != nil {
		return failure(t.logger, "list_taxonomy_types", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d concept types:\n", len(types))
	for _, ty := range types {
		fmt.Fprintf(&b, "- %s\n", ty)
	}

	return textResult(b.String()), types, nil
}

func writeConceptList(b *strings.Builder, heading string, concepts []taxonomy.Concept) {
	if len(concepts) == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, c := range concepts {
		fmt.Fprintf(b, "- %s (id: %s)\n", c.Label, c.ID)
	}
}
