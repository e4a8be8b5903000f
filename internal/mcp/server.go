// Package mcp exposes detection as a Model Context Protocol tool so
// agent clients can score passages directly.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"essaylens/internal/detect"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for EssayLens.
type Server struct {
	engine *detect.Engine
	server *mcp.Server
}

// NewServer wraps the detection engine in an MCP server.
func NewServer(engine *detect.Engine) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("mcp server needs a detection engine")
	}

	impl := &mcp.Implementation{
		Name:    "essaylens",
		Version: Version,
	}

	s := &Server{
		engine: engine,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
