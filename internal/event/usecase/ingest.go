package usecase

import (
	"context"

	"git-activity-feed/internal/event"
)

// Ingest normalizes one delivery and stores the resulting event.
func (uc *implUseCase) Ingest(ctx context.Context, input event.IngestInput) (event.IngestOutput, error) {
	out, err := uc.Normalize(input.Payload)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest Normalize: %v", err)
		return event.IngestOutput{}, err
	}

	if out.Ignored {
		uc.l.Infof(ctx, "Ignored %s delivery: %s", input.Payload.EventKind(), out.Reason)
		return event.IngestOutput{Status: event.StatusIgnored, Message: out.Reason}, nil
	}

	if err := uc.repo.InsertEvent(ctx, out.Event); err != nil {
		uc.l.Errorf(ctx, "uc.Ingest InsertEvent: %v", err)
		return event.IngestOutput{}, err
	}

	uc.l.Infof(ctx, "Stored event: %s by %s", out.Event.Action, out.Event.Author)
	return event.IngestOutput{
		Status:  event.StatusReceived,
		Message: event.MessageEventReceived,
		Event:   out.Event,
	}, nil
}
