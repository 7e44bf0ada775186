package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git-activity-feed/internal/event/repository"
	"git-activity-feed/internal/event/repository/memory"
	"git-activity-feed/internal/event/repository/sqlite"
	"git-activity-feed/internal/model"
	"git-activity-feed/pkg/log"
)

// Both backends must return identical results for identical insert sequences.
func TestBackendsAgreeOnOrdering(t *testing.T) {
	ctx := context.Background()

	sqliteStore, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "events.db"), log.NewNop())
	require.NoError(t, err)
	defer func() { _ = sqliteStore.Close() }()

	backends := []repository.Repository{memory.New(), sqliteStore}

	actions := []model.Action{model.ActionPush, model.ActionPullRequest, model.ActionMerge}
	const total = 12
	for i := 0; i < total; i++ {
		event := model.CanonicalEvent{
			RequestID: fmt.Sprintf("id-%02d", i),
			Author:    fmt.Sprintf("user-%d", i%3),
			Action:    actions[i%len(actions)],
			ToBranch:  "main",
			// Deliberately non-monotonic text so ordering cannot come from this field
			Timestamp: fmt.Sprintf("%dth May 2021 - 1:00 PM UTC", 28-i),
		}
		if event.Action != model.ActionPush {
			event.FromBranch = "feature"
		}
		for _, b := range backends {
			require.NoError(t, b.InsertEvent(ctx, event), b.Backend())
		}
	}

	for n := 0; n <= total+2; n++ {
		want, err := backends[0].FetchLatestEvents(ctx, repository.FetchLatestOptions{Limit: n})
		require.NoError(t, err)

		expectedLen := n
		if expectedLen > total {
			expectedLen = total
		}
		require.Len(t, want, expectedLen)
		if expectedLen > 0 {
			require.Equal(t, fmt.Sprintf("id-%02d", total-1), want[0].RequestID)
		}

		for _, b := range backends[1:] {
			got, err := b.FetchLatestEvents(ctx, repository.FetchLatestOptions{Limit: n})
			require.NoError(t, err)
			require.Equal(t, want, got, "backend %s, n=%d", b.Backend(), n)
		}
	}
}
