// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

// Package transcripts contains the MCP tools that query Andy Jassy's
// leadership-principle video transcripts: listing which principles have one,
// retrieving a transcript, and searching within transcript content.
package transcripts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type listArgs struct{}

// List returns the principles that have a transcript available.
func List(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "transcript-list",
		Description: "List the Amazon Leadership Principles that have a video transcript available, in the same order as the principle list. Not every principle has one; check here before calling transcript-get.",
		Annotations: i.QueryAnnotations("List available transcripts"),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		names := catalog.PrinciplesWithTranscripts()

		return i.RespondJSON(map[string]any{
			"count":      len(names),
			"principles": names,
		})
	})

	return tool, handler
}
