// Command server is the main entry point for the MCP time server.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/theapemachine/mcp-server-time/pkg/config"
	"github.com/theapemachine/mcp-server-time/pkg/server"
	"github.com/theapemachine/mcp-server-time/pkg/timecalc"
	"github.com/theapemachine/mcp-server-time/pkg/timezone"
	"github.com/theapemachine/mcp-server-time/pkg/tools"
	"github.com/theapemachine/mcp-server-time/pkg/tools/clock"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// stdout carries the protocol, so every log line goes to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mcp-time",
	})
	log.SetDefault(logger)

	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logger.Error("invalid arguments", "error", err)
		return 1
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		logger.Error("could not load configuration", "error", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	logger.SetLevel(cfg.LogLevel())

	local, err := timezone.ResolveLocal(cfg.LocalTimezone)
	if err != nil {
		logger.Error("could not determine local timezone", "error", err)
		return 1
	}

	logger.Info("starting time server", "localTimezone", local.Name(), "logLevel", cfg.Log.Level)

	registry := tools.NewRegistry(clock.Tools(timecalc.New(), local.Name())...).
		Use(tools.LoggingMiddleware(logger))
	srv := server.New(
		registry,
		server.WithLogger(logger),
		server.WithServerInfo(cfg.Server.Name, cfg.Server.Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", "error", err)
		return 1
	}

	logger.Info("server shutdown complete")
	return 0
}
