// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package transcripts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type searchArgs struct {
	Term string `json:"term"`
}

// Search finds transcripts whose content contains a term and returns an
// excerpt around each match.
func Search(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "transcript-search",
		Description: "Search within the leadership-principle video transcripts for a case-insensitive substring. Returns, for each matching transcript, the principle name and an excerpt of roughly 120 characters of context either side of the first match. The term must not be empty; transcripts are long and returning all of them is not useful.",
		Annotations: i.QueryAnnotations("Search transcripts"),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"term": map[string]any{
					"type":        "string",
					"description": "Non-empty substring to find in transcript content, case-insensitively",
				},
			},
			Required: []string{"term"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, error) {
		matches, err := catalog.SearchTranscripts(args.Term)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return i.RespondJSON(map[string]any{
			"term":    args.Term,
			"count":   len(matches),
			"matches": matches,
		})
	})

	return tool, handler
}
