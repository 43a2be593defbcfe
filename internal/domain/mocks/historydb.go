package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/jsonlens/internal/domain/entities"
)

// HistoryDB is a mock implementation of ports.HistoryDB backed by a slice.
// Entries are appended in call order, so the newest entry is last.
type HistoryDB struct {
	Entries []*entities.Entry
	Err     error

	PrunedTo int
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *HistoryDB) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the database connection.
func (m *HistoryDB) Close() error {
	return nil
}

// SaveEntry persists an entry, assigning ID and CreatedAt when unset.
func (m *HistoryDB) SaveEntry(_ context.Context, entry *entities.Entry) error {
	if m.Err != nil {
		return m.Err
	}
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("entry-%d", len(m.Entries)+1)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

// FindEntry finds an entry by its ID. Returns (nil, nil) when absent.
func (m *HistoryDB) FindEntry(_ context.Context, id string) (*entities.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

// ListEntries lists entries newest-first with pagination.
func (m *HistoryDB) ListEntries(_ context.Context, limit, offset int) ([]*entities.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []*entities.Entry
	for i := len(m.Entries) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Entries[i])
	}
	return result, nil
}

// LatestEntry returns the most recent entry, or (nil, nil) when empty.
func (m *HistoryDB) LatestEntry(_ context.Context) (*entities.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Entries) == 0 {
		return nil, nil
	}
	return m.Entries[len(m.Entries)-1], nil
}

// PruneEntries deletes all but the newest keep entries.
func (m *HistoryDB) PruneEntries(_ context.Context, keep int) error {
	if m.Err != nil {
		return m.Err
	}
	m.PrunedTo = keep
	if len(m.Entries) > keep {
		m.Entries = m.Entries[len(m.Entries)-keep:]
	}
	return nil
}

// ClearEntries deletes all entries and returns how many were removed.
func (m *HistoryDB) ClearEntries(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	n := len(m.Entries)
	m.Entries = nil
	return n, nil
}

// CountEntries returns the total number of entries.
func (m *HistoryDB) CountEntries(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Entries), nil
}
