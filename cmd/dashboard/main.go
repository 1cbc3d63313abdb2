package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/Meghaaa003/ADAS/internal/adapter/http"
	"github.com/Meghaaa003/ADAS/internal/config"
	"github.com/Meghaaa003/ADAS/internal/dataset"
	"github.com/Meghaaa003/ADAS/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	loader := dataset.NewLoader(cfg, logger, metrics)

	srv, err := httpadapter.NewServer(cfg.HTTPAddr, loader, logger, metrics)
	if err != nil {
		logger.Error("failed to build http server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("dashboard started",
		"cas_file", cfg.CASFile,
		"casdms_file", cfg.CASDMSFile,
		"sample_fraction", cfg.SampleFraction,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
