package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"shelve/internal/config"
)

// Store manages move-ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.History.Path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a completed move. A zero MovedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, mv *Move) error {
	if mv.MovedAt.IsZero() {
		mv.MovedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO moves (run_id, name, category, source_path, dest_path, moved_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		mv.RunID,
		mv.Name,
		mv.Category,
		mv.SourcePath,
		mv.DestPath,
		mv.MovedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert move: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	mv.ID = id
	return nil
}

// Recent returns the most recently recorded moves, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Move, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, name, category, source_path, dest_path, moved_at
         FROM moves ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var mv Move
		var movedAt string
		if err := rows.Scan(&mv.ID, &mv.RunID, &mv.Name, &mv.Category, &mv.SourcePath, &mv.DestPath, &movedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, movedAt); parseErr == nil {
			mv.MovedAt = ts
		}
		moves = append(moves, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}
