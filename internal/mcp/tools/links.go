package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/links"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// LinksAPI is the slice of the links client the tool needs.
type LinksAPI interface {
	Search(ctx context.Context, params links.SearchParams) (*links.SearchResult, error)
}

// SearchJobLinksParams defines the arguments for search_job_links.
type SearchJobLinksParams struct {
	Query    string `json:"query" jsonschema:"Free-text query"`
	Location string `json:"location,omitempty" jsonschema:"Location filter, e.g. a municipality name"`
	Offset   int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Page size, default 10"`
}

type linksTools struct {
	api    LinksAPI
	logger *logging.Logger
}

// RegisterLinksTools installs the cross-market link search tool.
func RegisterLinksTools(server *sdkmcp.Server, api LinksAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: links client is required")
	}

	t := linksTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_job_links",
		Description: "Search job ads aggregated from job boards across the wider market, returned as outbound links",
		Annotations: readOnly("Search cross-market job links"),
	}, t.search)

	return nil
}

func (t linksTools) search(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchJobLinksParams) (*sdkmcp.CallToolResult, any, error) {
	result, err := t.api.Search(ctx, links.SearchParams{
		Query:    params.Query,
		Location: params.Location,
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return failure(t.logger, "search_job_links", err)
	}

	if len(result.Hits) == 0 {
		return textResult("No cross-market job links matched the query."), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d linked ads, showing %d:\n", result.Total, len(result.Hits))
	for i, hit := range result.Hits {
		fmt.Fprintf(&b, "%d. %s", i+1, hit.Headline)
		if hit.OccupationGroup != "" {
			fmt.Fprintf(&b, " (%s)", hit.OccupationGroup)
		}
		b.WriteString("\n")
		for _, link := range hit.SourceLinks {
			fmt.Fprintf(&b, "   %s: %s\n", link.Label, link.URL)
		}
	}

	return textResult(b.String()), result, nil
}
