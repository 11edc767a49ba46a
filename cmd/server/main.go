package main

import (
	"context"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maltehb/jobtech-mcp/internal/config"
	"github.com/maltehb/jobtech-mcp/internal/mcp"
	"github.com/maltehb/jobtech-mcp/pkg/logging"
	"github.com/maltehb/jobtech-mcp/pkg/shutdown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		transport string
		port      string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:          "jobtech-mcp",
		Short:        "MCP server exposing the Swedish labour-market APIs as tools",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// flags win over environment
			if transport != "" {
				cfg.Transport = transport
			}
			if port != "" {
				cfg.Port = port
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "transport to serve on: stdio or http (overrides MCP_TRANSPORT)")
	cmd.Flags().StringVar(&port, "port", "", "HTTP listen port (overrides PORT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	return cmd
}

func run(cfg config.Config) error {
	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize upstream clients", "err", err)
		return err
	}

	srv := mcp.NewServer(logger, cfg)

	registry := mcp.NewToolRegistry(logger)
	if err := registry.RegisterAll(srv.MCP(), res); err != nil {
		logger.Error("failed to register MCP tools", "err", err)
		return err
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	if cfg.Transport == config.TransportHTTP {
		logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))
	} else {
		logger.Info("MCP server initialized and starting", "transport", cfg.Transport)
	}

	if err := srv.Run(context.Background()); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
