package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"classsync/config"
	_ "classsync/docs" // Swagger docs
	"classsync/internal/httpserver"
	"classsync/internal/middleware"
	fileRepo "classsync/internal/task/repository/file"
	"classsync/internal/task/usecase"
	"classsync/pkg/blobstore"
	"classsync/pkg/gemini"
	"classsync/pkg/log"
)

// @title       ClassSync API
// @description Single-user assignment tracker with AI-assisted task extraction.
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

	logger.Info(ctx, "Starting ClassSync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage dir: %s", cfg.Storage.Dir)

	// 3. Task store (blob-backed)
	blobs, err := blobstore.New(cfg.Storage.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to open blob store: ", err)
		return
	}
	taskRepo := fileRepo.New(blobs, logger)

	// 4. Gemini client for AI auto-fill
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set, AI auto-fill requests will fail")
	}
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 5. Task UseCase
	taskUC := usecase.New(logger, taskRepo, geminiClient)

	// 6. Middleware
	mw := middleware.New(logger, cfg.Extraction.RateLimitPerMin)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Middleware:  mw,
		TaskUC:      taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
