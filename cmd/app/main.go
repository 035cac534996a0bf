package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"steadyday.app/internal/app"
	"steadyday.app/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	slog.SetDefault(logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).Logger)

	if err := run(); err != nil {
		slog.Error("Environmental data service stopped", "error", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run() error {
	application, err := app.NewApplication()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	served := make(chan error, 1)
	go func() {
		served <- application.Start(ctx)
	}()

	cfg := application.Config()
	slog.Info("Environmental data service started",
		"port", cfg.Server.Port,
		"utc_offset_hours", cfg.Locale.UTCOffsetHours)

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-served
}
