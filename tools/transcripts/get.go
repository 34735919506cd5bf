// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package transcripts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type getArgs struct {
	Name string `json:"name"`
}

// Get retrieves the transcript for one principle by name.
func Get(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "transcript-get",
		Description: "Get the full video transcript for one Amazon Leadership Principle by its name, case-insensitively. The error message distinguishes a principle that does not exist from one that exists but has no transcript; use transcript-list to see what is available.",
		Annotations: i.QueryAnnotations("Get transcript"),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Full principle name, case-insensitive (e.g. 'earn trust')",
				},
			},
			Required: []string{"name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args getArgs) (*mcp.CallToolResult, error) {
		entry, err := catalog.Transcript(args.Name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return i.RespondJSON(entry)
	})

	return tool, handler
}
