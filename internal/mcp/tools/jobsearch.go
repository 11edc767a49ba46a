package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
	"github.com/maltehb/jobtech-mcp/pkg/jobsearch"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// JobSearchAPI is the slice of the jobsearch client the tools need.
type JobSearchAPI interface {
	Search(ctx context.Context, params jobsearch.SearchParams) (*jobsearch.SearchResult, error)
	GetAd(ctx context.Context, id string) (*jobsearch.Ad, error)
	Complete(ctx context.Context, query string, limit int) (*jobsearch.CompleteResult, error)
}

// SearchJobsParams defines the arguments for the search_jobs tool.
type SearchJobsParams struct {
	Query          string   `json:"query" jsonschema:"Free-text query, e.g. a job title or skill"`
	Municipalities []string `json:"municipalities,omitempty" jsonschema:"Municipality concept ids to filter on"`
	Regions        []string `json:"regions,omitempty" jsonschema:"Region concept ids to filter on"`
	Employer       string   `json:"employer,omitempty" jsonschema:"Employer name filter"`
	Remote         *bool    `json:"remote,omitempty" jsonschema:"Restrict to remote-friendly ads"`
	PublishedAfter string   `json:"published_after,omitempty" jsonschema:"Only ads published after this ISO 8601 date"`
	Offset         int      `json:"offset,omitempty" jsonschema:"Pagination offset"`
	Limit          int      `json:"limit,omitempty" jsonschema:"Page size, default 10"`
}

// GetJobAdParams defines the arguments for the get_job_ad tool.
type GetJobAdParams struct {
	ID string `json:"id" jsonschema:"Job ad identifier from a previous search"`
}

// CompleteJobSearchParams defines the arguments for complete_job_search.
type CompleteJobSearchParams struct {
	Query string `json:"query" jsonschema:"Partial query to complete"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum suggestions, default 10"`
}

type jobSearchTools struct {
	api    JobSearchAPI
	logger *logging.Logger
}

// RegisterJobSearchTools installs the three JobSearch-backed tools.
func RegisterJobSearchTools(server *sdkmcp.Server, api JobSearchAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: jobsearch client is required")
	}

	t := jobSearchTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_jobs",
		Description: "Search currently published job ads by free text and structured filters",
		Annotations: readOnly("Search job ads"),
	}, t.searchJobs)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_ad",
		Description: "Fetch the full text of a single job ad by id",
		Annotations: readOnly("Get job ad"),
	}, t.getJobAd)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_job_search",
		Description: "Suggest query completions (occupations, skills, locations) for a partial search",
		Annotations: readOnly("Complete job search query"),
	}, t.complete)

	return nil
}

func (t jobSearchTools) searchJobs(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	result, err := t.api.Search(ctx, jobsearch.SearchParams{
		Query:          params.Query,
		Municipalities: params.Municipalities,
		Regions:        params.Regions,
		Employer:       params.Employer,
		Remote:         params.Remote,
		PublishedAfter: params.PublishedAfter,
		Offset:         params.Offset,
		Limit:          params.Limit,
	})
	if err != nil {
		return failure(t.logger, "search_jobs", err)
	}

	if len(result.Hits) == 0 {
		return textResult("No job ads matched the query."), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d job ads, showing %d:\n", result.Total, len(result.Hits))
	for i, ad := range result.Hits {
		fmt.Fprintf(&b, "%d. %s — %s (%s)\n   id: %s\n", i+1, ad.Headline, ad.Employer.Name, adLocation(ad), ad.ID)
	}

	return textResult(b.String()), result, nil
}

func (t jobSearchTools) getJobAd(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetJobAdParams) (*sdkmcp.CallToolResult, any, error) {
	ad, err := t.api.GetAd(ctx, params.ID)
	if fetch.IsNotFound(err) {
		return textResult(fmt.Sprintf("No job ad found with id %s. It may have been unpublished.", params.ID)), nil, nil
	}
	if err != nil {
		return failure(t.logger, "get_job_ad", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s (%s)\n", ad.Headline, ad.Employer.Name, adLocation(*ad))
	if ad.PublicationDate != "" {
		fmt.Fprintf(&b, "Published: %s\n", ad.PublicationDate)
	}
	if ad.ApplicationDeadline != "" {
		fmt.Fprintf(&b, "Apply before: %s\n", ad.ApplicationDeadline)
	}
	if ad.WebpageURL != "" {
		fmt.Fprintf(&b, "URL: %s\n", ad.WebpageURL)
	}
	if ad.Description.Text != "" {
		fmt.Fprintf(&b, "\n%s\n", ad.Description.Text)
	}

	return textResult(b.String()), ad, nil
}

func (t jobSearchTools) complete(ctx context.Context, req *sdkmcp.CallToolRequest, params *CompleteJobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	result, err := t.api.Complete(ctx, params.Query, params.Limit)
	if err != nil {
		return failure(t.logger, "complete_job_search", err)
	}

	if len(result.Typeahead) == 0 {
		return textResult("No completions found."), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Completions for %q:\n", params.Query)
	for _, s := range result.Typeahead {
		fmt.Fprintf(&b, "- %s (%s, %d ads)\n", s.Value, s.Type, s.Occurrences)
	}

	return textResult(b.String()), result, nil
}

func adLocation(ad jobsearch.Ad) string {
	switch {
	case ad.WorkplaceAddress.Municipality != "":
		return ad.WorkplaceAddress.Municipality
	case ad.WorkplaceAddress.Region != "":
		return ad.WorkplaceAddress.Region
	case ad.Remote:
		return "remote"
	default:
		return "location unspecified"
	}
}
