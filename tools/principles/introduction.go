// Copyright 2025 contributors
// SPDX-License-Identifier: Apache-2.0

package principles

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "amazon-lp-mcp/tools/internal"
	"amazon-lp-mcp/types"
)

type introductionArgs struct{}

// Introduction returns the prefatory text for the principle set.
func Introduction(catalog types.Catalog) (mcp.Tool, i.ToolHandler) {
	tool := mcp.Tool{
		Name:        "lp-introduction",
		Description: "Get the introduction text that accompanies the Amazon Leadership Principles, describing what the principle set is and how Amazon uses it. Use this for framing before presenting individual principles.",
		Annotations: i.QueryAnnotations("Get introduction"),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args introductionArgs) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(catalog.Introduction()), nil
	})

	return tool, handler
}
