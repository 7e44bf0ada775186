package webhook_test

import (
	"errors"
	"testing"

	"git-activity-feed/internal/webhook"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		rl := webhook.NewRateLimiter(0)
		for i := 0; i < 100; i++ {
			if err := rl.Allow("client"); err != nil {
				t.Fatalf("disabled limiter rejected request %d: %v", i, err)
			}
		}
	})

	t.Run("Burst then reject", func(t *testing.T) {
		// 60/min → burst of 6
		rl := webhook.NewRateLimiter(60)
		for i := 0; i < 6; i++ {
			if err := rl.Allow("client-a"); err != nil {
				t.Fatalf("request %d rejected within burst: %v", i, err)
			}
		}
		if err := rl.Allow("client-a"); !errors.Is(err, webhook.ErrRateLimitExceeded) {
			t.Errorf("expected ErrRateLimitExceeded, got %v", err)
		}
		// Other clients have their own bucket
		if err := rl.Allow("client-b"); err != nil {
			t.Errorf("independent key rejected: %v", err)
		}
	})

	t.Run("Low limit keeps a burst of one", func(t *testing.T) {
		rl := webhook.NewRateLimiter(5)
		if err := rl.Allow("client"); err != nil {
			t.Fatalf("first request rejected: %v", err)
		}
	})
}
