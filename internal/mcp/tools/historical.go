package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
	"github.com/maltehb/jobtech-mcp/pkg/historical"
	"github.com/maltehb/jobtech-mcp/pkg/jobsearch"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// HistoricalAPI is the slice of the historical client the tools need.
type HistoricalAPI interface {
	Search(ctx context.Context, params historical.SearchParams) (*jobsearch.SearchResult, error)
	GetAd(ctx context.Context, id string) (*jobsearch.Ad, error)
	Stats(ctx context.Context, params historical.StatsParams) (*historical.StatsResult, error)
}

// SearchHistoricalParams defines the arguments for search_historical_ads.
type SearchHistoricalParams struct {
	Query  string `json:"query" jsonschema:"Free-text query against the archive"`
	From   string `json:"from,omitempty" jsonschema:"Earliest publication date, e.g. 2019-01-01"`
	To     string `json:"to,omitempty" jsonschema:"Latest publication date, e.g. 2019-12-31"`
	Offset int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Page size, default 10"`
}

// GetHistoricalAdParams defines the arguments for get_historical_ad.
type GetHistoricalAdParams struct {
	ID string `json:"id" jsonschema:"Archived ad identifier"`
}

// HistoricalStatsParams defines the arguments for historical_ad_stats.
type HistoricalStatsParams struct {
	Query  string   `json:"query,omitempty" jsonschema:"Optional free-text filter"`
	From   string   `json:"from,omitempty" jsonschema:"Earliest publication date"`
	To     string   `json:"to,omitempty" jsonschema:"Latest publication date"`
	Fields []string `json:"fields" jsonschema:"Aggregation fields, e.g. occupation-name, municipality, region"`
	Limit  int      `json:"limit,omitempty" jsonschema:"Buckets per field, default upstream-defined"`
}

type historicalTools struct {
	api    HistoricalAPI
	logger *logging.Logger
}

// RegisterHistoricalTools installs the three archive-backed tools.
func RegisterHistoricalTools(server *sdkmcp.Server, api HistoricalAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: historical client is required")
	}

	t := historicalTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_historical_ads",
		Description: "Search the archive of job ads published since 2016",
		Annotations: readOnly("Search historical job ads"),
	}, t.search)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_historical_ad",
		Description: "Fetch a single archived job ad by id",
		Annotations: readOnly("Get historical job ad"),
	}, t.getAd)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "historical_ad_stats",
		Description: "Aggregate archived job ads over taxonomy fields such as occupation or municipality",
		Annotations: readOnly("Historical job ad statistics"),
	}, t.stats)

	return nil
}

func (t historicalTools) search(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchHistoricalParams) (*sdkmcp.CallToolResult, any, error) {
	result, err := t.api.Search(ctx, historical.SearchParams{
		Query:  params.Query,
		From:   params.From,
		To:     params.To,
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return failure(t.logger, "search_historical_ads", err)
	}

	if len(result.Hits) == 0 {
		return textResult("No archived ads matched the query."), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d archived ads, showing %d:\n", result.Total, len(result.Hits))
	for i, ad := range result.Hits {
		fmt.Fprintf(&b, "%d. %s — %s (published %s)\n   id: %s\n", i+1, ad.Headline, ad.Employer.Name, ad.PublicationDate, ad.ID)
	}

	return textResult(b.String()), result, nil
}

func (t historicalTools) getAd(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetHistoricalAdParams) (*sdkmcp.CallToolResult, any, error) {
	ad, err := t.api.GetAd(ctx, params.ID)
	if fetch.IsNotFound(err) {
		return textResult(fmt.Sprintf("No archived ad found with id %s.", params.ID)), nil, nil
	}
	if err != nil {
		return failure(t.logger, "get_historical_ad", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s (published %s)\n", ad.Headline, ad.Employer.Name, ad.PublicationDate)
	if ad.Description.Text != "" {
		fmt.Fprintf(&b, "\n%s\n", ad.Description.Text)
	}

	return textResult(b.String()), ad, nil
}

func (t historicalTools) stats(ctx context.Context, req *sdkmcp.CallToolRequest, params *HistoricalStatsParams) (*sdkmcp.CallToolResult, any, error) {
	if len(params.Fields) == 0 {
		return errorResult("At least one aggregation field is required, e.g. occupation-name."), nil, nil
	}

	result, err := t.api.Stats(ctx, historical.StatsParams{
		Query:  params.Query,
		From:   params.From,
		To:     params.To,
		Fields: params.Fields,
		Limit:  params.Limit,
	})
	if err != nil {
		return failure(t.logger, "historical_ad_stats", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d archived ads in range.\n", result.Total)
	for _, group := range result.Stats {
		fmt.Fprintf(&b, "\nTop %s:\n", group.Type)
		for _, v := range group.Values {
			fmt.Fprintf(&b, "- %s: %d\n", v.Term, v.Count)
		}
	}

	return textResult(b.String()), result, nil
}
