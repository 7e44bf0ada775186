package usecase

import (
	"context"

	"git-activity-feed/internal/event"
	repo "git-activity-feed/internal/event/repository"
)

// ListLatest returns the newest events, most recent first.
// A non-positive limit means event.DefaultLatestLimit.
func (uc *implUseCase) ListLatest(ctx context.Context, input event.ListLatestInput) (event.ListLatestOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = event.DefaultLatestLimit
	}

	events, err := uc.repo.FetchLatestEvents(ctx, repo.FetchLatestOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLatest FetchLatestEvents: %v", err)
		return event.ListLatestOutput{}, err
	}

	return event.ListLatestOutput{Events: events}, nil
}
