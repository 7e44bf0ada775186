package event

import (
	"context"

	"git-activity-feed/internal/webhook"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Normalize maps a decoded payload to a canonical event or an ignore decision.
	Normalize(payload webhook.Payload) (NormalizeOutput, error)
	// Ingest normalizes and stores one webhook delivery.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
	// ListLatest returns the newest stored events, most recent first.
	ListLatest(ctx context.Context, input ListLatestInput) (ListLatestOutput, error)
}
