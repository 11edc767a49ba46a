// Package tools implements the fifteen MCP tools exposed over the seven
// labour-market APIs. Every handler returns a human-readable text block
// plus a structured payload; upstream failures become user-facing error
// results instead of protocol errors.
package tools

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/pkg/fetch"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// maxTextRunes bounds the formatted text block of any tool response.
const maxTextRunes = 5000

const truncationMarker = "\n… [output truncated]"

// textResult returns a text-only ToolResult, truncated to maxTextRunes.
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: truncate(msg)},
		},
	}
}

func errorResult(msg string) *sdkmcp.CallToolResult {
	res := textResult(msg)
	res.IsError = true
	return res
}

// truncate caps s at maxTextRunes runes, appending a marker when cut.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTextRunes {
		return s
	}
	return string(runes[:maxTextRunes]) + truncationMarker
}

// failure translates an upstream error into a user-facing error result.
// The typed fetch error kinds get tailored messages; anything else is
// reported generically.
func failure(logger *logging.Logger, tool string, err error) (*sdkmcp.CallToolResult, any, error) {
	if logger != nil {
		logger.Error("tool call failed", "tool", tool, "err", err)
	}

	var msg string
	switch kind, ok := fetch.KindOf(err); {
	case ok && kind == fetch.KindRateLimited:
		msg = "The upstream API is rate limiting requests. Wait a moment and try again."
	case ok && kind == fetch.KindTimeout:
		msg = "The upstream API did not respond in time. Try again or narrow the request."
	case ok && kind == fetch.KindServer:
		msg = "The upstream API is having trouble right now. Try again later."
	default:
		msg = fmt.Sprintf("The request failed: %v", err)
	}

	return errorResult(msg), nil, nil
}

// readOnly builds the annotations shared by every tool here: all of them
// only read from open, public APIs.
func readOnly(title string) *sdkmcp.ToolAnnotations {
	return &sdkmcp.ToolAnnotations{
		Title:          title,
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  ptr(true),
	}
}

func ptr[T any](v T) *T {
	return &v
}
