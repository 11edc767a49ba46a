package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/internal/mcp/tools"
	"github.com/maltehb/jobtech-mcp/pkg/enrich"
	"github.com/maltehb/jobtech-mcp/pkg/historical"
	"github.com/maltehb/jobtech-mcp/pkg/jobed"
	"github.com/maltehb/jobtech-mcp/pkg/jobsearch"
	"github.com/maltehb/jobtech-mcp/pkg/jobstream"
	"github.com/maltehb/jobtech-mcp/pkg/links"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
	"github.com/maltehb/jobtech-mcp/pkg/taxonomy"
)

// ToolRegistry installs every tool group into the MCP server.
type ToolRegistry struct {
	logger *logging.Logger
}

// Resources holds the seven upstream clients the tool handlers depend on.
type Resources struct {
	JobSearch  *jobsearch.Client
	JobStream  *jobstream.Client
	Historical *historical.Client
	Enrich     *enrich.Client
	Links      *links.Client
	JobEd      *jobed.Client
	Taxonomy   *taxonomy.Client
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) error {
	if err := tools.RegisterJobSearchTools(server, res.JobSearch, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterJobStreamTools(server, res.JobStream, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterHistoricalTools(server, res.Historical, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterEnrichTools(server, res.Enrich, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterLinksTools(server, res.Links, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterJobEdTools(server, res.JobEd, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterTaxonomyTools(server, res.Taxonomy, r.logger); err != nil {
		return err
	}

	return nil
}
