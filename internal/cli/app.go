package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"rental-ops/internal/config"
	"rental-ops/internal/database"
	"rental-ops/internal/logging"
	"rental-ops/internal/server"

	"github.com/prometheus/client_golang/prometheus"
)

// app is what the one-shot commands need: configuration, a connection and the wired services.
type app struct {
	cfg       *config.Config
	db        *database.DB
	container *server.Container
	logger    *slog.Logger
	closeDB   func() error
}

// openApp connects to the configured database. Tests replace it with an in-memory one.
var openApp = func() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.IsDevelopment())

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	a := newApp(cfg, db, logger)
	a.closeDB = db.Close
	return a, nil
}

func newApp(cfg *config.Config, db *database.DB, logger *slog.Logger) *app {
	// Commands do not expose metrics, so they get a private registry.
	container := server.NewContainer(cfg, db.DB, prometheus.NewRegistry(), logger)
	return &app{cfg: cfg, db: db, container: container, logger: logger, closeDB: func() error { return nil }}
}

// close closes the database, logging any error to stderr.
func (a *app) close() {
	if err := a.closeDB(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
