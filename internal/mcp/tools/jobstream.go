package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/jobstream"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// defaultEventCap bounds how many stream events a single tool response
// presents; the underlying feed can be arbitrarily large.
const defaultEventCap = 50

// JobStreamAPI is the slice of the jobstream client the tools need.
type JobStreamAPI interface {
	Changes(ctx context.Context, params jobstream.ChangesParams) ([]jobstream.Event, error)
	Snapshot(ctx context.Context) ([]jobstream.Event, error)
}

// StreamChangesParams defines the arguments for stream_job_changes.
type StreamChangesParams struct {
	Since                string   `json:"since" jsonschema:"RFC 3339 timestamp; events after this moment are returned"`
	UpdatedBefore        string   `json:"updated_before,omitempty" jsonschema:"RFC 3339 timestamp upper bound"`
	OccupationConceptIDs []string `json:"occupation_concept_ids,omitempty" jsonschema:"Taxonomy occupation concept ids to filter on"`
	LocationConceptIDs   []string `json:"location_concept_ids,omitempty" jsonschema:"Taxonomy location concept ids to filter on"`
	MaxResults           int      `json:"max_results,omitempty" jsonschema:"Cap on presented events, default 50"`
}

// StreamSnapshotParams defines the arguments for stream_job_snapshot.
type StreamSnapshotParams struct {
	MaxResults int `json:"max_results,omitempty" jsonschema:"Cap on presented ads, default 50"`
}

// StreamResult is the structured payload for both stream tools.
type StreamResult struct {
	Total     int               `json:"total"`
	Presented int               `json:"presented"`
	Events    []jobstream.Event `json:"events"`
}

type jobStreamTools struct {
	api    JobStreamAPI
	logger *logging.Logger
}

// RegisterJobStreamTools installs the two JobStream-backed tools.
func RegisterJobStreamTools(server *sdkmcp.Server, api JobStreamAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: jobstream client is required")
	}

	t := jobStreamTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "stream_job_changes",
		Description: "List job ads published, updated, or removed since a timestamp",
		Annotations: readOnly("Stream job ad changes"),
	}, t.changes)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "stream_job_snapshot",
		Description: "Sample the full set of currently published job ads",
		Annotations: readOnly("Snapshot published job ads"),
	}, t.snapshot)

	return nil
}

func (t jobStreamTools) changes(ctx context.Context, req *sdkmcp.CallToolRequest, params *StreamChangesParams) (*sdkmcp.CallToolResult, any, error) {
	since, err := time.Parse(time.RFC3339, params.Since)
	if err != nil {
		return errorResult(fmt.Sprintf("Invalid since timestamp %q, expected RFC 3339 such as 2024-03-01T00:00:00Z.", params.Since)), nil, nil
	}

	var updatedBefore time.Time
	if params.UpdatedBefore != "" {
		updatedBefore, err = time.Parse(time.RFC3339, params.UpdatedBefore)
		if err != nil {
			return errorResult(fmt.Sprintf("Invalid updated_before timestamp %q, expected RFC 3339.", params.UpdatedBefore)), nil, nil
		}
	}

	events, err := t.api.Changes(ctx, jobstream.ChangesParams{
		Since:                since,
		UpdatedBefore:        updatedBefore,
		OccupationConceptIDs: params.OccupationConceptIDs,
		LocationConceptIDs:   params.LocationConceptIDs,
	})
	if err != nil {
		return failure(t.logger, "stream_job_changes", err)
	}

	result := capEvents(events, params.MaxResults)
	if result.Total == 0 {
		return textResult("No job ad changes in the requested window."), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d changed ads since %s, showing %d:\n", result.Total, params.Since, result.Presented)
	for _, e := range result.Events {
		if e.Removed {
			fmt.Fprintf(&b, "- [removed] %s (removed %s)\n", e.ID, e.RemovedDate)
			continue
		}
		fmt.Fprintf(&b, "- %s — %s (%s)\n", e.ID, e.Headline, e.Occupation.Label)
	}

	return textResult(b.String()), result, nil
}

func (t jobStreamTools) snapshot(ctx context.Context, req *sdkmcp.CallToolRequest, params *StreamSnapshotParams) (*sdkmcp.CallToolResult, any, error) {
	events, err := t.api.Snapshot(ctx)
	if err != nil {
		return failure(t.logger, "stream_job_snapshot", err)
	}

	result := capEvents(events, params.MaxResults)
	if result.Total == 0 {
		return textResult("The snapshot contains no published ads."), result, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d ads currently published, showing %d:\n", result.Total, result.Presented)
	for _, e := range result.Events {
		fmt.Fprintf(&b, "- %s — %s (%s, %s)\n", e.ID, e.Headline, e.Occupation.Label, e.Workplace.Municipality)
	}

	return textResult(b.String()), result, nil
}

func capEvents(events []jobstream.Event, maxResults int) StreamResult {
	if maxResults <= 0 {
		maxResults = defaultEventCap
	}

	presented := events
	if len(presented) > maxResults {
		presented = presented[:maxResults]
	}

	return StreamResult{
		Total:     len(events),
		Presented: len(presented),
		Events:    presented,
	}
}
