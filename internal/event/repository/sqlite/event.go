package sqlite

import (
	"context"

	"git-activity-feed/internal/event/repository"
	"git-activity-feed/internal/model"
)

// InsertEvent appends one event row.
func (s *Store) InsertEvent(ctx context.Context, event model.CanonicalEvent) error {
	if err := repository.ValidateEvent(event); err != nil {
		return err
	}

	const query = `
		INSERT INTO events (request_id, author, action, from_branch, to_branch, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		event.RequestID, event.Author, string(event.Action),
		event.FromBranch, event.ToBranch, event.Timestamp,
	)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("InsertEvent"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// FetchLatestEvents returns up to opt.Limit events ordered by row id, newest first.
// The formatted timestamp column is not sortable and is never used for ordering.
func (s *Store) FetchLatestEvents(ctx context.Context, opt repository.FetchLatestOptions) ([]model.CanonicalEvent, error) {
	if opt.Limit <= 0 {
		return []model.CanonicalEvent{}, nil
	}

	const query = `
		SELECT request_id, author, action, from_branch, to_branch, timestamp
		FROM events
		ORDER BY id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, opt.Limit)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("FetchLatestEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	events := []model.CanonicalEvent{}
	for rows.Next() {
		var (
			e      model.CanonicalEvent
			action string
		)
		if err := rows.Scan(&e.RequestID, &e.Author, &action, &e.FromBranch, &e.ToBranch, &e.Timestamp); err != nil {
			s.l.Errorf(ctx, "%s scan: %v", s.dsn("FetchLatestEvents"), err)
			return nil, repository.ErrFailedToList
		}
		e.Action = model.Action(action)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		s.l.Errorf(ctx, "%s rows: %v", s.dsn("FetchLatestEvents"), err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}
