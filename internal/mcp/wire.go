//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/maltehb/jobtech-mcp/internal/config"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// InitializeResources wires the shared fetch policy into the seven
// upstream clients and bundles them as Resources.
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		provideFetchClient,

		provideJobSearchClient,
		provideJobStreamClient,
		provideHistoricalClient,
		provideEnrichClient,
		provideLinksClient,
		provideJobEdClient,
		provideTaxonomyClient,

		newResources,
	)

	return &Resources{}, nil
}
