package usecase

import (
	"fmt"

	"git-activity-feed/internal/event"
	"git-activity-feed/pkg/timefmt"
)

// coalesce returns the first non-empty string, or "" when all are empty.
func (uc *implUseCase) coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// timestamp formats raw, substituting now when raw is empty.
func (uc *implUseCase) timestamp(raw string) (string, error) {
	if raw == "" {
		return uc.formatter.Format(""), nil
	}
	if uc.strict {
		t, err := timefmt.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", event.ErrInvalidTimestamp, err)
		}
		return timefmt.Render(t), nil
	}
	return uc.formatter.Format(raw), nil
}

func ignored(reason string) event.NormalizeOutput {
	return event.NormalizeOutput{Ignored: true, Reason: reason}
}
