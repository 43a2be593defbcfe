// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/services"
)

// ValidateHandler handles JSON validation requests.
type ValidateHandler struct {
	document *services.Document
	history  *services.History
}

// NewValidateHandler creates a new validate handler. The history service
// may be nil when persistence is disabled.
func NewValidateHandler(document *services.Document, history *services.History) *ValidateHandler {
	return &ValidateHandler{
		document: document,
		history:  history,
	}
}

// ValidateResult contains the outcome of a validation. Invalid input is
// an outcome, not an error: Message carries the failure text and Position
// the resolved location when one is available.
type ValidateResult struct {
	Valid    bool
	Message  string
	Position *entities.Position
}

// Handle validates the given text and records the outcome in history.
// The error return is reserved for infrastructure failures.
func (h *ValidateHandler) Handle(ctx context.Context, text string) (*ValidateResult, error) {
	vErr := h.document.Validate(text)

	if h.history != nil {
		if err := h.history.Record(ctx, entities.OperationValidate, text, "", vErr); err != nil {
			return nil, fmt.Errorf("recording history: %w", err)
		}
	}

	if vErr == nil {
		return &ValidateResult{Valid: true}, nil
	}

	result := &ValidateResult{Message: vErr.Error()}
	var synErr *entities.SyntaxError
	if errors.As(vErr, &synErr) {
		result.Position = synErr.Pos
	}
	return result, nil
}
