// Package internal provides shared helpers for the MCP tool layer.
package internal

import "github.com/mark3labs/mcp-go/mcp"

// QueryAnnotations creates the annotation set shared by every catalog tool:
// read-only, idempotent, and closed-world, since all queries run against
// immutable in-memory data with no external access.
func QueryAnnotations(title string) mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		IdempotentHint:  mcp.ToBoolPtr(true),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}
}
