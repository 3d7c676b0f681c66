package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/api"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/config"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/version"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logger
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ver := version.Resolve(cfg.Version, config.InstallRoot())

	roots := dashboard.Roots{
		MemoryBank: cfg.MemoryBankDir,
		Lessons:    cfg.LessonsDir,
		ADRs:       cfg.ADRDir,
		Features:   cfg.FeaturesDir,
		Notes:      cfg.NotesDir,
	}

	// Router
	reg := prometheus.NewRegistry()
	router := api.NewRouter(roots, ver, reg, logger)

	// Server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("dashboard starting",
			"addr", cfg.Addr(),
			"version", ver,
			"memory_bank", cfg.MemoryBankDir,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
