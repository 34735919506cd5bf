// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

// Package principles contains the MCP tools that query the leadership
// principle set itself: listing, substring search, single lookup, and the
// introduction text.
package principles

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type listArgs struct{}

// List returns every Amazon Leadership Principle with the introduction.
func List(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "lp-list",
		Description: "List all Amazon Leadership Principles in their canonical order, together with the introduction text. Use this to get the complete principle set with full descriptions before answering general questions about how Amazon defines leadership.",
		Annotations: i.QueryAnnotations("List leadership principles"),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		return i.RespondJSON(catalog.Principles())
	})

	return tool, handler
}
