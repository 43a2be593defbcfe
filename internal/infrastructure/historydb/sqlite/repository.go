// Package sqlite provides a SQLite implementation of the HistoryDB interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.HistoryDB using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{db: db, path: cfg.Path}, nil
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	// seq gives a total insertion order; created_at alone cannot break
	// ties between entries recorded in the same instant.
	schema := `
	CREATE TABLE IF NOT EXISTS history_entries (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		operation  TEXT NOT NULL,
		input      TEXT NOT NULL,
		output     TEXT NOT NULL DEFAULT '',
		valid      INTEGER NOT NULL,
		error_msg  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveEntry persists an entry, assigning ID and CreatedAt when unset.
func (r *Repository) SaveEntry(ctx context.Context, entry *entities.Entry) error {
	if entry.ID == "" {
		entry.ID = generateUUID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = timeNow().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history_entries (id, operation, input, output, valid, error_msg, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Operation), entry.Input, entry.Output,
		boolToInt(entry.Valid), entry.ErrorMsg, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// FindEntry finds an entry by its ID. Returns (nil, nil) when absent.
func (r *Repository) FindEntry(ctx context.Context, id string) (*entities.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, operation, input, output, valid, error_msg, created_at
		FROM history_entries WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying history entry: %w", err)
	}
	return entry, nil
}

// ListEntries lists entries newest-first with pagination.
func (r *Repository) ListEntries(ctx context.Context, limit, offset int) ([]*entities.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, operation, input, output, valid, error_msg, created_at
		FROM history_entries
		ORDER BY seq DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying history entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history entries: %w", err)
	}
	return entries, nil
}

// LatestEntry returns the most recent entry, or (nil, nil) when empty.
func (r *Repository) LatestEntry(ctx context.Context) (*entities.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, operation, input, output, valid, error_msg, created_at
		FROM history_entries
		ORDER BY seq DESC
		LIMIT 1`)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest history entry: %w", err)
	}
	return entry, nil
}

// PruneEntries deletes all but the newest keep entries.
func (r *Repository) PruneEntries(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM history_entries
		WHERE seq NOT IN (
			SELECT seq FROM history_entries
			ORDER BY seq DESC
			LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("pruning history entries: %w", err)
	}
	return nil
}

// ClearEntries deletes all entries and returns how many were removed.
func (r *Repository) ClearEntries(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM history_entries")
	if err != nil {
		return 0, fmt.Errorf("clearing history entries: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared entries: %w", err)
	}
	return int(n), nil
}

// CountEntries returns the total number of entries.
func (r *Repository) CountEntries(ctx context.Context) (int, error) {
	var count int
	row := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history_entries")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting history entries: %w", err)
	}
	return count, nil
}

// scanner abstracts sql.Row and sql.Rows for scanEntry.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*entities.Entry, error) {
	var (
		entry entities.Entry
		op    string
		valid int
	)
	if err := s.Scan(&entry.ID, &op, &entry.Input, &entry.Output, &valid, &entry.ErrorMsg, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.Operation = entities.Operation(op)
	entry.Valid = valid != 0
	return &entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
