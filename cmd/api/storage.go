package main

import (
	"context"
	"time"

	"git-activity-feed/config"
	"git-activity-feed/internal/event/repository"
	"git-activity-feed/internal/event/repository/memory"
	"git-activity-feed/internal/event/repository/sqlite"
	"git-activity-feed/pkg/log"
)

const storageConnectTimeout = 5 * time.Second

// openStore picks the event store once at startup.
// A missing DSN or an unreachable database falls back to the in-memory store.
func openStore(ctx context.Context, cfg config.StorageConfig, l log.Logger) repository.Repository {
	if cfg.Driver == config.StorageDriverMemory {
		l.Info(ctx, "Using in-memory event store")
		return memory.New()
	}

	if cfg.DSN == "" {
		l.Warn(ctx, "Storage DSN not configured, falling back to in-memory event store")
		return memory.New()
	}

	connectCtx, cancel := context.WithTimeout(ctx, storageConnectTimeout)
	defer cancel()

	store, err := sqlite.New(connectCtx, cfg.DSN, l)
	if err != nil {
		l.Warnf(ctx, "Event database unavailable, falling back to in-memory event store: %v", err)
		return memory.New()
	}

	l.Infof(ctx, "Using %s event store", store.Backend())
	return store
}
