package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git-activity-feed/config"
	_ "git-activity-feed/docs" // Swagger docs
	eventHTTP "git-activity-feed/internal/event/delivery/http"
	"git-activity-feed/internal/event/usecase"
	"git-activity-feed/internal/httpserver"
	"git-activity-feed/internal/test"
	"git-activity-feed/internal/webhook"
	"git-activity-feed/pkg/log"
	"git-activity-feed/pkg/timefmt"
)

// @title       Git Activity Feed API
// @description Receives GitHub push and pull_request webhooks and serves the latest repository activity.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Git Activity Feed...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event store
	store := openStore(ctx, cfg.Storage, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf(context.Background(), "Failed to close event store: %v", err)
		}
	}()

	// 4. Event domain
	eventUC := usecase.New(store, timefmt.New(nil), cfg.Normalizer.Strict, logger)
	if cfg.Normalizer.Strict {
		logger.Info(ctx, "Strict normalization enabled: unparseable timestamps are rejected")
	}

	limiter := webhook.NewRateLimiter(cfg.Webhook.RateLimitPerMin)
	eventHandler := eventHTTP.New(logger, eventUC, limiter, cfg.Storage.LatestLimit)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		EventHandler:   eventHandler,
		StorageBackend: store.Backend(),
		TestHandler:    test.New(logger, eventUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
