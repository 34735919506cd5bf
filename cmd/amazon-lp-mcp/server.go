package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"amazon-lp-mcp/catalog"
	"amazon-lp-mcp/data"
	"amazon-lp-mcp/instructions"
	internalserver "amazon-lp-mcp/internal/server"
	"amazon-lp-mcp/tools"
	"amazon-lp-mcp/types"
)

// Server wires the loaded catalog, the tool handlers, and the MCP transport.
type Server struct {
	mcp          *server.MCPServer
	toolHandlers *tools.ToolHandlers
	catalog      types.Catalog
	httpServer   *internalserver.Server
	config       *Config
	logger       hclog.Logger
}

// Config holds configuration for the server
type Config struct {
	DataDir    string
	ServerType string
	Port       int
	LogLevel   string
}

// newServer creates a new server instance. Loading the catalog happens here,
// exactly once; any load or schema error is fatal and the server never
// starts serving.
func newServer(config *Config) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "amazon-lp-mcp",
		Level:  hclog.LevelFromString(config.LogLevel),
		Output: os.Stderr,
	})

	cat, err := loadCatalog(config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	toolHandlers := tools.New(cat)

	s := &Server{
		toolHandlers: toolHandlers,
		catalog:      cat,
		config:       config,
		logger:       logger,
	}

	s.mcp = server.NewMCPServer(
		"amazon-lp-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithInstructions(instructions.Get()),
	)

	toolHandlers.RegisterTools(s)

	return s, nil
}

// loadCatalog reads the two documents from dataDir, falling back to the
// embedded defaults when no directory is configured.
func loadCatalog(dataDir string) (*catalog.Catalog, error) {
	if dataDir == "" {
		return catalog.Load(data.Principles, data.Transcripts)
	}

	return catalog.LoadFiles(
		filepath.Join(dataDir, "amazon-lp.json"),
		filepath.Join(dataDir, "transcripts.json"),
	)
}

// start runs the configured transport until ctx is cancelled or the
// transport fails.
func (s *Server) start(ctx context.Context) error {
	errChan := make(chan error, 1)

	switch s.config.ServerType {
	case "stdio":
		s.logger.Info("starting MCP stdio server")
		go func() {
			errChan <- server.ServeStdio(s.mcp)
		}()
	case "http":
		addr := fmt.Sprintf(":%d", s.config.Port)
		s.logger.Info("starting MCP http server", "addr", addr)
		s.httpServer = internalserver.New(addr, s.mcp, s.logger)
		go func() {
			errChan <- s.httpServer.ListenAndServe()
		}()
	default:
		return fmt.Errorf("unknown server type %q", s.config.ServerType)
	}

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// stop gracefully shuts down the server
func (s *Server) stop(ctx context.Context) error {
	s.logger.Info("stopping server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("error shutting down http server", "error", err)
			return err
		}
	}

	return nil
}

// AddTool registers an MCP tool handler
func (s *Server) AddTool(tool mcp.Tool, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	s.mcp.AddTool(tool, handler)
}
