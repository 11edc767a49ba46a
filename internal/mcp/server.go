package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maltehb/jobtech-mcp/internal/config"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

// Server wraps an MCP SDK server behind one of two transports: stdio for
// process-local clients, or a streamable HTTP listener.
type Server struct {
	logger *logging.Logger
	config config.Config

	mcp      *sdkmcp.Server
	srv      *http.Server
	stop     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

// NewServer constructs the MCP server for the configured transport.
// Tools are registered separately through MCP().
func NewServer(log *logging.Logger, cfg config.Config) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "jobtech-mcp",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	s := &Server{
		logger: log,
		config: cfg,
		mcp:    mcpServer,
		stop:   make(chan struct{}),
	}

	if cfg.Transport == config.TransportHTTP {
		handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
			return mcpServer
		}, nil)

		mux := http.NewServeMux()
		mux.Handle("/mcp", handler)
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		s.srv = &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return s
}

// MCP exposes the underlying SDK server for tool registration.
func (s *Server) MCP() *sdkmcp.Server {
	return s.mcp
}

// Run serves until the context is cancelled or Shutdown is called.
func (s *Server) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.srv != nil {
		s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info("MCP server serving on stdio")
	return s.mcp.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")
	s.stopOnce.Do(func() { close(s.stop) })

	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
			return err
		}
	}

	s.logger.Info("MCP server shutdown complete")
	return nil
}
