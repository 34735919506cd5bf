// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package principles

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type getArgs struct {
	Name string `json:"name"`
}

// Get retrieves a single principle by name.
func Get(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "lp-get",
		Description: "Get one Amazon Leadership Principle by its exact name (e.g. 'Customer Obsession', 'Earn Trust'). Matching is case-insensitive but must be the full name; use lp-search first if you only know part of it. Returns the principle with its full description.",
		Annotations: i.QueryAnnotations("Get leadership principle"),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Full principle name, case-insensitive (e.g. 'customer obsession')",
				},
			},
			Required: []string{"name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args getArgs) (*mcp.CallToolResult, error) {
		principle, err := catalog.Principle(args.Name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return i.RespondJSON(principle)
	})

	return tool, handler
}
