package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/database"
	"rental-ops/internal/logging"
	"rental-ops/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const otpCleanupInterval = time.Hour

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the HTTP API. Migrations run first when AUTO_MIGRATE is true.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	return cmd
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.Setup(cfg.IsDevelopment())

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go cleanupOTPCodes(ctx, db, logger)

	return server.New(cfg, db.DB, registry, logger).Run(ctx)
}

// cleanupOTPCodes removes expired login codes until ctx is done.
func cleanupOTPCodes(ctx context.Context, db *database.DB, logger *slog.Logger) {
	ticker := time.NewTicker(otpCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := db.CleanupExpiredOTPCodes(ctx, now.UTC())
			if err != nil {
				logger.Warn("otp cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("expired otp codes removed", "count", removed)
			}
		}
	}
}
