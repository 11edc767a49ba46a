package mcp

import (
	"github.com/maltehb/jobtech-mcp/internal/config"
	"github.com/maltehb/jobtech-mcp/pkg/enrich"
	"github.com/maltehb/jobtech-mcp/pkg/fetch"
	"github.com/maltehb/jobtech-mcp/pkg/historical"
	"github.com/maltehb/jobtech-mcp/pkg/jobed"
	"github.com/maltehb/jobtech-mcp/pkg/jobsearch"
	"github.com/maltehb/jobtech-mcp/pkg/jobstream"
	"github.com/maltehb/jobtech-mcp/pkg/links"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
	"github.com/maltehb/jobtech-mcp/pkg/taxonomy"
)

// provideFetchClient builds the one fetch policy shared by all upstreams.
func provideFetchClient(cfg config.Config, logger *logging.Logger) *fetch.Client {
	return fetch.New(
		fetch.WithLogger(logger.With("component", "fetch")),
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithRetries(cfg.Fetch.Retries),
	)
}

func provideJobSearchClient(cfg config.Config, fetcher *fetch.Client) *jobsearch.Client {
	return jobsearch.NewClient(jobsearch.Config{BaseURL: cfg.Upstream.JobSearchURL, Fetcher: fetcher})
}

func provideJobStreamClient(cfg config.Config, fetcher *fetch.Client) *jobstream.Client {
	return jobstream.NewClient(jobstream.Config{BaseURL: cfg.Upstream.JobStreamURL, Fetcher: fetcher})
}

func provideHistoricalClient(cfg config.Config, fetcher *fetch.Client) *historical.Client {
	return historical.NewClient(historical.Config{BaseURL: cfg.Upstream.HistoricalURL, Fetcher: fetcher})
}

func provideEnrichClient(cfg config.Config, fetcher *fetch.Client) *enrich.Client {
	return enrich.NewClient(enrich.Config{BaseURL: cfg.Upstream.EnrichURL, Fetcher: fetcher})
}

func provideLinksClient(cfg config.Config, fetcher *fetch.Client) *links.Client {
	return links.NewClient(links.Config{BaseURL: cfg.Upstream.LinksURL, Fetcher: fetcher})
}

func provideJobEdClient(cfg config.Config, fetcher *fetch.Client) *jobed.Client {
	return jobed.NewClient(jobed.Config{BaseURL: cfg.Upstream.JobEdURL, Fetcher: fetcher})
}

func provideTaxonomyClient(cfg config.Config, fetcher *fetch.Client) *taxonomy.Client {
	return taxonomy.NewClient(taxonomy.Config{BaseURL: cfg.Upstream.TaxonomyURL, Fetcher: fetcher})
}

// newResources assembles the Resources struct.
func newResources(
	jobSearch *jobsearch.Client,
	jobStream *jobstream.Client,
	historicalClient *historical.Client,
	enrichClient *enrich.Client,
	linksClient *links.Client,
	jobEd *jobed.Client,
	taxonomyClient *taxonomy.Client,
) *Resources {
	return &Resources{
		JobSearch:  jobSearch,
		JobStream:  jobStream,
		Historical: historicalClient,
		Enrich:     enrichClient,
		Links:      linksClient,
		JobEd:      jobEd,
		Taxonomy:   taxonomyClient,
	}
}
