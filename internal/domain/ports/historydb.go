package ports

import (
	"context"

	"github.com/ersonp/jsonlens/internal/domain/entities"
)

// HistoryDB defines the interface for persisting operation history.
// Inputs are stored verbatim so a session can be restored exactly.
type HistoryDB interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveEntry persists an entry, assigning ID and CreatedAt when unset.
	SaveEntry(ctx context.Context, entry *entities.Entry) error

	// FindEntry finds an entry by its ID. Returns (nil, nil) when absent.
	FindEntry(ctx context.Context, id string) (*entities.Entry, error)

	// ListEntries lists entries newest-first with pagination.
	ListEntries(ctx context.Context, limit, offset int) ([]*entities.Entry, error)

	// LatestEntry returns the most recent entry, or (nil, nil) when empty.
	LatestEntry(ctx context.Context) (*entities.Entry, error)

	// PruneEntries deletes all but the newest keep entries.
	PruneEntries(ctx context.Context, keep int) error

	// ClearEntries deletes all entries and returns how many were removed.
	ClearEntries(ctx context.Context) (int, error)

	// CountEntries returns the total number of entries.
	CountEntries(ctx context.Context) (int, error)
}
