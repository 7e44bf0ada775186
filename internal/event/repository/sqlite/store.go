package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"git-activity-feed/internal/event/repository"
	"git-activity-feed/pkg/log"
)

// BackendName identifies this store in logs and health output.
const BackendName = "sqlite"

// Store is a SQLite implementation of repository.Repository.
type Store struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*Store)(nil)

// New opens (creating if needed) the database at dsn and initializes the schema.
// It fails when the database cannot be reached, letting the caller pick a fallback.
func New(ctx context.Context, dsn string, l log.Logger) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite: empty dsn")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writes and keeps ":memory:" databases consistent.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db, l: l}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	statements := []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA synchronous=NORMAL`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL,
			action TEXT NOT NULL CHECK (action IN ('PUSH', 'PULL_REQUEST', 'MERGE')),
			from_branch TEXT NOT NULL DEFAULT '',
			to_branch TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL,
			received_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func (s *Store) Backend() string { return BackendName }

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *Store) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}

func firstLine(stmt string) string {
	for i, r := range stmt {
		if r == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
