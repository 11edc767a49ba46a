package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/enrich"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// EnrichAPI is the slice of the enrichment client the tool needs.
type EnrichAPI interface {
	EnrichText(ctx context.Context, docs []enrich.Document, includeTerms bool) ([]enrich.EnrichedDocument, error)
}

// EnrichJobTextParams defines the arguments for enrich_job_text.
type EnrichJobTextParams struct {
	Text         string `json:"text" jsonschema:"Job ad or CV text to analyze"`
	Headline     string `json:"headline,omitempty" jsonschema:"Optional headline for the text"`
	IncludeTerms bool   `json:"include_terms,omitempty" jsonschema:"Include the matched source terms in the payload"`
}

type enrichTools struct {
	api    EnrichAPI
	logger *logging.Logger
}

// RegisterEnrichTools installs the enrichment tool.
func RegisterEnrichTools(server *sdkmcp.Server, api EnrichAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: enrich client is required")
	}

	t := enrichTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "enrich_job_text",
		Description: "Extract occupations, competencies, traits, and locations from free text",
		Annotations: readOnly("Enrich job-related text"),
	}, t.enrichText)

	return nil
}

func (t enrichTools) enrichText(ctx context.Context, req *sdkmcp.CallToolRequest, params *EnrichJobTextParams) (*sdkmcp.CallToolResult, any, error) {
	if strings.TrimSpace(params.Text) == "" {
		return errorResult("Text to enrich must not be empty."), nil, nil
	}

	docs := []enrich.Document{{
		ID:       "doc-1",
		Headline: params.Headline,
		Text:     params.Text,
	}}

	enriched, err := t.api.EnrichText(ctx, docs, params.IncludeTerms)
	if err != nil {
		return failure(t.logger, "enrich_job_text", err)
	}
	if len(enriched) == 0 {
		return textResult("The enrichment service returned no analysis for this text."), enriched, nil
	}

	doc := enriched[0]
	var b strings.Builder
	writeCandidates(&b, "Occupations", doc.Candidates.Occupations)
	writeCandidates(&b, "Competencies", doc.Candidates.Competencies)
	writeCandidates(&b, "Traits", doc.Candidates.Traits)
	writeCandidates(&b, "Locations", doc.Candidates.Geos)
	if b.Len() == 0 {
		return textResult("Nothing recognizable was extracted from the text."), doc, nil
	}

	return textResult(b.String()), doc, nil
}

func writeCandidates(b *strings.Builder, heading string, candidates []enrich.Candidate) {
	if len(candidates) == 0 {
		return
	}

	fmt.Fprintf(b, "%s:\n", heading)
	for _, c := range candidates {
		fmt.Fprintf(b, "- %s (%.0f%%)\n", c.Label, c.Prediction*100)
	}
	b.WriteString("\n")
}
