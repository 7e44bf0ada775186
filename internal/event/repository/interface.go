package repository

import (
	"context"

	"git-activity-feed/internal/model"
)

// Repository is the composed interface for the event store.
type Repository interface {
	EventRepository

	// Backend names the implementation, e.g. "sqlite" or "memory".
	Backend() string
	Close() error
}

// EventRepository defines data access for canonical events.
// Implementations order results by insertion, most recent first.
type EventRepository interface {
	InsertEvent(ctx context.Context, event model.CanonicalEvent) error
	FetchLatestEvents(ctx context.Context, opt FetchLatestOptions) ([]model.CanonicalEvent, error)
}
