package repository

import (
	"fmt"

	"git-activity-feed/internal/model"
)

// ValidateEvent rejects records that could never come out of normalization.
func ValidateEvent(event model.CanonicalEvent) error {
	if !event.Action.Valid() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidEvent, event.Action)
	}
	if event.Timestamp == "" {
		return fmt.Errorf("%w: empty timestamp", ErrInvalidEvent)
	}
	return nil
}
