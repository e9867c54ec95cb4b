package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/medigraph/symptomgraph/pkg/api"
	"github.com/medigraph/symptomgraph/pkg/auth"
	"github.com/medigraph/symptomgraph/pkg/config"
	"github.com/medigraph/symptomgraph/pkg/dataset"
	"github.com/medigraph/symptomgraph/pkg/diagnosis"
	"github.com/medigraph/symptomgraph/pkg/logging"
	"github.com/medigraph/symptomgraph/pkg/metrics"
	"github.com/medigraph/symptomgraph/pkg/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	port := flag.Int("port", 0, "HTTP server port (overrides config and PORT)")
	flag.Parse()

	// Structured logging for the process itself
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slogger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Logging.Level))

	slogger.Info("symptomgraph server starting",
		"port", cfg.Server.Port,
		"auth_enabled", cfg.Server.AuthSecret != "",
	)

	// Load-time errors abort startup: the source tables cannot be trusted.
	slogger.Info("loading dataset",
		"severity", cfg.Data.Severity,
		"relationships", cfg.Data.Relationship,
	)
	g, c, err := dataset.LoadFiles(cfg.Data, logger)
	if err != nil {
		slogger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	stats := g.Statistics()
	slogger.Info("graph built",
		"symptoms", stats.Symptoms,
		"diseases", stats.Diseases,
		"edges", stats.Edges,
	)

	engine := diagnosis.NewEngine(g, c, logger)
	registry := metrics.NewRegistry()

	var tokens *auth.TokenManager
	if cfg.Server.AuthSecret != "" {
		tokens, err = auth.NewTokenManager(cfg.Server.AuthSecret, 24*time.Hour)
		if err != nil {
			slogger.Error("failed to configure auth", "error", err)
			os.Exit(1)
		}
	}

	apiServer, err := api.NewServer(engine, registry, tokens, logger)
	if err != nil {
		slogger.Error("failed to create API server", "error", err)
		os.Exit(1)
	}

	gs := server.NewGracefulServer(
		fmt.Sprintf(":%d", cfg.Server.Port),
		apiServer.Handler(),
		server.Options{
			ReadTimeout:     cfg.Server.ReadTimeout,
			WriteTimeout:    cfg.Server.WriteTimeout,
			IdleTimeout:     cfg.Server.IdleTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		logger,
	)

	slogger.Info("server listening", "port", cfg.Server.Port)
	if err := gs.Start(); err != nil {
		slogger.Error("server error", "error", err)
		os.Exit(1)
	}
	slogger.Info("server exited")
}
