package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/services"
)

// FormatHandler handles prettify and minify requests.
type FormatHandler struct {
	document *services.Document
	history  *services.History
}

// NewFormatHandler creates a new format handler. The history service may
// be nil when persistence is disabled.
func NewFormatHandler(document *services.Document, history *services.History) *FormatHandler {
	return &FormatHandler{
		document: document,
		history:  history,
	}
}

// FormatResult contains the outcome of a reformatting operation.
type FormatResult struct {
	Output   string
	Valid    bool
	Message  string
	Position *entities.Position
}

// Handle reindents the given text with the given width.
func (h *FormatHandler) Handle(ctx context.Context, text string, indent int) (*FormatResult, error) {
	out, opErr := h.document.Prettify(text, indent)
	return h.finish(ctx, entities.OperationFormat, text, out, opErr)
}

// HandleMinify strips all insignificant whitespace from the given text.
func (h *FormatHandler) HandleMinify(ctx context.Context, text string) (*FormatResult, error) {
	out, opErr := h.document.Minify(text)
	return h.finish(ctx, entities.OperationMinify, text, out, opErr)
}

func (h *FormatHandler) finish(ctx context.Context, op entities.Operation, text, out string, opErr error) (*FormatResult, error) {
	if h.history != nil {
		if err := h.history.Record(ctx, op, text, out, opErr); err != nil {
			return nil, fmt.Errorf("recording history: %w", err)
		}
	}

	if opErr == nil {
		return &FormatResult{Output: out, Valid: true}, nil
	}

	result := &FormatResult{Message: opErr.Error()}
	var synErr *entities.SyntaxError
	if errors.As(opErr, &synErr) {
		result.Position = synErr.Pos
	}
	return result, nil
}
