package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linkylink/config"
	_ "linkylink/docs" // Swagger docs
	"linkylink/internal/event/usecase"
	"linkylink/internal/httpserver"
	"linkylink/pkg/datemath"
	"linkylink/pkg/linkapi"
	"linkylink/pkg/log"
	"linkylink/pkg/permalink"
)

// @title       linkylink API
// @description Turns a free-text event description into add-to-calendar links and a shareable permalink.
// @version     1
// @host        localhost:8080
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

	logger.Info(ctx, "Starting linkylink...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Generate-link API: %s", cfg.LinkAPI.BaseURL)

	// 3. Event domain
	dateMathParser, dtErr := datemath.NewParser(cfg.Display.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Display.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	linkClient := linkapi.New(cfg.LinkAPI.BaseURL).
		WithTimeout(cfg.LinkAPI.Timeout).
		WithRetry(cfg.LinkAPI.RetryAttempts, cfg.LinkAPI.RetryDelay)

	eventUC := usecase.New(logger, linkClient, permalink.New(cfg.Permalink.BaseURL), dateMathParser)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		EventUseCase:    eventUC,
		Display:         dateMathParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
