package services

import (
	"context"
	"fmt"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/ports"
)

// DefaultHistoryLimit is the number of entries kept when no limit is configured.
const DefaultHistoryLimit = 100

// History records completed operations and restores past inputs.
type History struct {
	db    ports.HistoryDB
	limit int
}

// NewHistory creates a new history service. A non-positive limit falls
// back to DefaultHistoryLimit.
func NewHistory(db ports.HistoryDB, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		db:    db,
		limit: limit,
	}
}

// Record persists one completed operation. The input is stored verbatim;
// opErr, when non-nil, marks the entry invalid and captures the message
// instead of the output. Older entries beyond the configured limit are
// pruned.
func (s *History) Record(ctx context.Context, op entities.Operation, input, output string, opErr error) error {
	entry := &entities.Entry{
		Operation: op,
		Input:     input,
		Valid:     opErr == nil,
	}
	if opErr != nil {
		entry.ErrorMsg = opErr.Error()
	} else {
		entry.Output = output
	}

	if err := s.db.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	if err := s.db.PruneEntries(ctx, s.limit); err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}
	return nil
}

// List returns past entries newest-first.
func (s *History) List(ctx context.Context, limit int) ([]*entities.Entry, error) {
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}
	entries, err := s.db.ListEntries(ctx, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

// Find returns the entry with the given ID, or nil when absent.
func (s *History) Find(ctx context.Context, id string) (*entities.Entry, error) {
	entry, err := s.db.FindEntry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding history entry: %w", err)
	}
	return entry, nil
}

// Latest returns the most recent entry, or nil when history is empty.
func (s *History) Latest(ctx context.Context) (*entities.Entry, error) {
	entry, err := s.db.LatestEntry(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading latest history entry: %w", err)
	}
	return entry, nil
}

// Clear deletes all entries and returns how many were removed.
func (s *History) Clear(ctx context.Context) (int, error) {
	n, err := s.db.ClearEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return n, nil
}

// Count returns the total number of stored entries.
func (s *History) Count(ctx context.Context) (int, error) {
	n, err := s.db.CountEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting history entries: %w", err)
	}
	return n, nil
}
