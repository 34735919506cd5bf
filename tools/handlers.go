package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"amazon-lp-mcp/tools/principles"
	"amazon-lp-mcp/tools/transcripts"
	"amazon-lp-mcp/types"
)

// Server interface defines the MCP server
type Server interface {
	AddTool(tool mcp.Tool, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error))
}

// ToolHandlers contains all MCP tool handlers
type ToolHandlers struct {
	catalog types.Catalog
}

// New creates new tool handlers
func New(catalog types.Catalog) *ToolHandlers {
	return &ToolHandlers{
		catalog: catalog,
	}
}

// RegisterTools registers all MCP tools with the server
func (th *ToolHandlers) RegisterTools(s Server) {
	// Register list principles tool
	tool, handler := principles.List(th.catalog)
	s.AddTool(tool, handler)

	// Register search principles tool
	tool, handler = principles.Search(th.catalog)
	s.AddTool(tool, handler)

	// Register get principle tool
	tool, handler = principles.Get(th.catalog)
	s.AddTool(tool, handler)

	// Register introduction tool
	tool, handler = principles.Introduction(th.catalog)
	s.AddTool(tool, handler)

	// Register list transcripts tool
	tool, handler = transcripts.List(th.catalog)
	s.AddTool(tool, handler)

	// Register get transcript tool
	tool, handler = transcripts.Get(th.catalog)
	s.AddTool(tool, handler)

	// Register search transcripts tool
	tool, handler = transcripts.Search(th.catalog)
	s.AddTool(tool, handler)
}
