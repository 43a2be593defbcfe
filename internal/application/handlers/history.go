package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/services"
)

// HistoryHandler handles queries against the operation history.
type HistoryHandler struct {
	history *services.History
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history *services.History) *HistoryHandler {
	return &HistoryHandler{
		history: history,
	}
}

// HandleList returns past entries newest-first, with the total count.
func (h *HistoryHandler) HandleList(ctx context.Context, limit int) ([]*entities.Entry, int, error) {
	entries, err := h.history.List(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := h.history.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// HandleShow returns the entry with the given ID.
func (h *HistoryHandler) HandleShow(ctx context.Context, id string) (*entities.Entry, error) {
	entry, err := h.history.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("no history entry with ID %q", id)
	}
	return entry, nil
}

// HandleClear deletes all entries and returns how many were removed.
func (h *HistoryHandler) HandleClear(ctx context.Context) (int, error) {
	return h.history.Clear(ctx)
}

// HandleLatest returns the most recent entry, or nil when history is empty.
func (h *HistoryHandler) HandleLatest(ctx context.Context) (*entities.Entry, error) {
	return h.history.Latest(ctx)
}
