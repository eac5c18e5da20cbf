package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/osmesirius-ship-it/instant-oracle/internal/adapters/http"
	"github.com/osmesirius-ship-it/instant-oracle/internal/adapters/meanings"
	"github.com/osmesirius-ship-it/instant-oracle/internal/adapters/render/artificer"
	"github.com/osmesirius-ship-it/instant-oracle/internal/adapters/store"
	"github.com/osmesirius-ship-it/instant-oracle/internal/app"
	"github.com/osmesirius-ship-it/instant-oracle/internal/config"
	"github.com/osmesirius-ship-it/instant-oracle/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	meaningSource := meanings.NewStore()

	deckStore, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		slog.Error("failed to open deck store", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}
	defer deckStore.Close()

	var renderer ports.Renderer
	if cfg.RendererProvider == config.ProviderArtificer {
		renderer = artificer.NewClient(
			&http.Client{Timeout: cfg.RendererTimeout},
			cfg.RendererAPIKey,
			cfg.RendererBaseURL,
			cfg.RendererModel,
			cfg.RendererFallbackModels,
			logger,
		)
	}

	svc := app.NewOracleService(meaningSource, deckStore, renderer, cfg.Layout)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
