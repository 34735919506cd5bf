package server

import (
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	mcp := mcpserver.NewMCPServer("test", "0.0.0")
	s := New(":0", mcp, hclog.NewNullLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
