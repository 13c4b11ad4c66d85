package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"docassist/internal/config"
	"docassist/internal/fetcher"
	"docassist/internal/handler"
	"docassist/internal/logger"
	"docassist/internal/model"
	"docassist/internal/model/claude"
	"docassist/internal/model/gemini"
	"docassist/internal/model/openai"
	"docassist/internal/router"
	"docassist/internal/service"
	s3storage "docassist/internal/storage/s3"
)

// @title Document Assistant API
// @version 1.0
// @description Document scanning and form-filling assistant backed by a multimodal model.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	zl := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize model. A missing key keeps the server up but not ready.
	if cfg.Model.APIKey == "" {
		zl.Warn("model api key not configured", zap.String("provider", cfg.Model.Provider))
	}
	model.RegisterProvider("gemini", gemini.Factory)
	model.RegisterProvider("claude", claude.Factory)
	model.RegisterProvider("openai", openai.Factory)
	llm, err := model.NewModel(&cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize model: %w", err)
	}

	// Initialize storage
	storage, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		zl.Warn("s3 unavailable; s3:// image references and stored exports disabled", zap.Error(err))
	}

	// Initialize fetchers
	imageFetcher := fetcher.NewRouter(fetcher.NewHTTPFetcher(&cfg.Fetch))
	if storage != nil {
		imageFetcher.Handle("s3", fetcher.NewS3Fetcher(storage, cfg.Fetch.MaxImageBytes()))
	}

	// Initialize services
	assistantSvc := service.NewAssistantService(imageFetcher, llm, zl)
	exportSvc := service.NewExportService(storage, cfg.Export, &cfg.S3)

	// Setup router
	r := router.Setup(router.Handlers{
		Assistant: handler.NewAssistantHandler(assistantSvc),
		Export:    handler.NewExportHandler(exportSvc),
		Catalog:   handler.NewCatalogHandler(),
		Health:    handler.NewHealthHandler(cfg.Model.APIKey != ""),
	}, cfg.CORS.AllowedOrigins, zl)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
