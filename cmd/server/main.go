package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pdfsift/pdfsift/internal/api"
	"github.com/pdfsift/pdfsift/internal/config"
	"github.com/pdfsift/pdfsift/internal/document"
	"github.com/pdfsift/pdfsift/internal/ingest"
	"github.com/pdfsift/pdfsift/internal/ocr"
	"github.com/pdfsift/pdfsift/internal/search"
	"github.com/pdfsift/pdfsift/internal/usage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize clients.
	engine := ocr.NewClient(cfg.MistralAPIKey, cfg.MistralBaseURL, cfg.MistralModel, cfg.OCRTimeout)
	usageClient := usage.NewClient(cfg.AnalyticsURL, log)
	stats := usage.NewStats(cfg.StatsWindow)

	// Initialize pipeline and retrieval.
	store := document.NewStore()
	pipeline := ingest.NewPipeline(engine, store, usageClient, stats, cfg.MistralModel, log)
	downloader := ingest.NewDownloader(cfg.DownloadTimeout, cfg.MaxUploadBytes)
	retriever := search.NewRetriever(cfg.SearchDeterministic)

	// Initialize HTTP server.
	srv := api.NewServer(pipeline, downloader, store, retriever, usageClient, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		engine.Close()
		downloader.Close()
		usageClient.Close()
	}()

	log.Info("starting pdfsift", "port", cfg.Port, "model", cfg.MistralModel)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
