// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package principles

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type searchArgs struct {
	Term string `json:"term"`
}

// Search finds principles whose name or description contains a term.
func Search(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "lp-search",
		Description: "Search Amazon Leadership Principles by a case-insensitive substring of the name or description (e.g. 'trust', 'invent', 'customer'). Returns every matching principle in canonical order; an empty term returns all principles. Use this when you know a theme but not the exact principle name.",
		Annotations: i.QueryAnnotations("Search leadership principles"),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"term": map[string]any{
					"type":        "string",
					"description": "Substring to match against principle names and descriptions, case-insensitively",
				},
			},
			Required: []string{"term"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, error) {
		matches := catalog.SearchPrinciples(args.Term)

		return i.RespondJSON(map[string]any{
			"term":       args.Term,
			"count":      len(matches),
			"principles": matches,
		})
	})

	return tool, handler
}
