// Package server hosts the MCP streamable HTTP handler behind a chi router,
// alongside a health endpoint.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	logger     hclog.Logger
}

// New builds the HTTP host for the given MCP server. The MCP endpoint is
// mounted at /mcp; /health answers readiness probes.
func New(addr string, mcp *mcpserver.MCPServer, logger hclog.Logger) *Server {
	server := &Server{
		router: chi.NewRouter(),
		logger: logger,
	}

	server.router.Use(server.requestID)
	server.router.Mount("/mcp", mcpserver.NewStreamableHTTPServer(mcp))
	server.router.Get("/health", server.healthHandler)

	server.httpServer = &http.Server{
		Addr:              addr,
		Handler:           server.router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return server
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// requestID tags every request with a generated ID and logs it, so tool
// calls arriving over HTTP can be correlated with server logs.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		s.logger.Debug("handling request", "request_id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
