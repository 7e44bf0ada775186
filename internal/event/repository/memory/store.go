package memory

import (
	"context"
	"sync"

	"git-activity-feed/internal/event/repository"
	"git-activity-feed/internal/model"
)

// BackendName identifies this store in logs and health output.
const BackendName = "memory"

// Store keeps events in insertion order in process memory.
type Store struct {
	mu     sync.RWMutex
	events []model.CanonicalEvent
}

var _ repository.Repository = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

func (s *Store) InsertEvent(ctx context.Context, event model.CanonicalEvent) error {
	if err := repository.ValidateEvent(event); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

// FetchLatestEvents returns the last opt.Limit inserted events, newest first.
func (s *Store) FetchLatestEvents(ctx context.Context, opt repository.FetchLatestOptions) ([]model.CanonicalEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := opt.Limit
	if n > len(s.events) {
		n = len(s.events)
	}
	if n < 0 {
		n = 0
	}

	result := make([]model.CanonicalEvent, 0, n)
	for i := len(s.events) - 1; i >= len(s.events)-n; i-- {
		result = append(result, s.events[i])
	}
	return result, nil
}

func (s *Store) Backend() string { return BackendName }

func (s *Store) Close() error { return nil }
