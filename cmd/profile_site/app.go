package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/config"
	"github.com/jonathan/profile-site/internal/db"
	"github.com/jonathan/profile-site/internal/memstore"
	"github.com/jonathan/profile-site/internal/observability"
	"github.com/jonathan/profile-site/internal/service"
	"github.com/rs/zerolog"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   service.Store
	svc     *service.ProfileService
	closeFn func()
}

func (a *app) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

// openStore picks Postgres when a database URL is configured and the
// in-memory store otherwise. Tests replace it.
var openStore = func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is not set; using the in-memory store, nothing will be persisted")
		return memstore.New(), func() {}, nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, database.Close, nil
}

// newApp loads configuration and opens the store.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	store, closeFn, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		svc:     service.New(store, log),
		closeFn: closeFn,
	}, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid profile id %q: %w", s, err)
	}
	return id, nil
}
