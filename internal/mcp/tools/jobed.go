package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/jobed"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// JobEdAPI is the slice of the jobed client the tools need.
type JobEdAPI interface {
	MatchOccupations(ctx context.Context, educationDescription string, limit int) ([]jobed.Occupation, error)
	MatchEducations(ctx context.Context, occupationID string, limit int) ([]jobed.Education, error)
}

// MatchOccupationsParams defines the arguments for
// match_occupations_by_education.
type MatchOccupationsParams struct {
	EducationDescription string `json:"education_description" jsonschema:"Free-text description of an education or training"`
	Limit                int    `json:"limit,omitempty" jsonschema:"Maximum matches, default 10"`
}

// MatchEducationsParams defines the arguments for
// match_educations_by_occupation.
type MatchEducationsParams struct {
	OccupationID string `json:"occupation_id" jsonschema:"Taxonomy occupation concept id"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Maximum matches, default 10"`
}

type jobEdTools struct {
	api    JobEdAPI
	logger *logging.Logger
}

// RegisterJobEdTools installs the two education/occupation matching tools.
func RegisterJobEdTools(server *sdkmcp.Server, api JobEdAPI, logger *logging.Logger) error {
	if api == nil {
		return fmt.Errorf("tools: jobed client is required")
	}

	t := jobEdTools{api: api, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "match_occupations_by_education",
		Description: "Rank occupations that an education or training prepares for",
		Annotations: readOnly("Match occupations by education"),
	}, t.matchOccupations)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "match_educations_by_occupation",
		Description: "Rank education programs that lead toward an occupation",
		Annotations: readOnly("Match educations by occupation"),
	}, t.matchEducations)

	return nil
}

func (t jobEdTools) matchOccupations(ctx context.Context, req *sdkmcp.CallToolRequest, params *MatchOccupationsParams) (*sdkmcp.CallToolResult, any, error) {
	occupations, err := t.api.MatchOccupations(ctx, params.EducationDescription, params.Limit)
	if err != nil {
		return failure(t.logger, "match_occupations_by_education", err)
	}

	if len(occupations) == 0 {
		return textResult("No occupations matched that education description."), occupations, nil
	}

	var b strings.Builder
	b.WriteString("Matching occupations:\n")
	for i, o := range occupations {
		fmt.Fprintf(&b, "%d. %s", i+1, o.Label)
		if o.Group != "" {
			fmt.Fprintf(&b, " — %s", o.Group)
		}
		fmt.Fprintf(&b, " (score %.2f", o.Score)
		if o.AdsCount > 0 {
			fmt.Fprintf(&b, ", %d open ads", o.AdsCount)
		}
		b.WriteString(")\n")
	}

	return textResult(b.String()), occupations, nil
}

func (t jobEdTools) matchEducations(ctx context.Context, req *sdkmcp.CallToolRequest, params *MatchEducationsParams) (*sdkmcp.CallToolResult, any, error) {
	educations, err := t.api.MatchEducations(ctx, params.OccupationID, params.Limit)
	if err != nil {
		return failure(t.logger, "match_educations_by_occupation", err)
	}

	if len(educations) == 0 {
		return textResult("No education programs found for that occupation."), educations, nil
	}

	var b strings.Builder
	b.WriteString("Matching education programs:\n")
	for i, e := range educations {
		fmt.Fprintf(&b, "%d. %s", i+1, e.Title)
		if e.Provider != "" {
			fmt.Fprintf(&b, " — %s", e.Provider)
		}
		fmt.Fprintf(&b, " (score %.2f)\n", e.Score)
	}

	return textResult(b.String()), educations, nil
}
