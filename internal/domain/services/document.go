package services

import (
	"errors"
	"strings"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/ports"
)

// DefaultIndentWidth is the indent width used when none is given.
const DefaultIndentWidth = 2

// Document validates and canonically reformats JSON text. All operations
// are pure: the same input always produces the same result, and nothing
// is retained between calls.
type Document struct {
	codec   ports.Codec
	locator *Locator
}

// NewDocument creates a new document service.
func NewDocument(codec ports.Codec, locator *Locator) *Document {
	return &Document{
		codec:   codec,
		locator: locator,
	}
}

// Validate checks that text is syntactically valid JSON. Empty or
// whitespace-only input fails with entities.ErrEmptyInput. Invalid input
// fails with a *entities.SyntaxError whose message carries a
// "(line L, column C)" suffix whenever a position could be resolved.
func (s *Document) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return entities.ErrEmptyInput
	}
	if err := s.codec.Check(text); err != nil {
		return s.annotate(err, text)
	}
	return nil
}

// Prettify validates text and returns it reindented with the given width.
// A non-positive indent falls back to DefaultIndentWidth. Validation
// failures propagate unchanged.
func (s *Document) Prettify(text string, indent int) (string, error) {
	if err := s.Validate(text); err != nil {
		return "", err
	}
	if indent <= 0 {
		indent = DefaultIndentWidth
	}
	out, err := s.codec.Pretty(text, indent)
	if err != nil {
		return "", s.annotate(err, text)
	}
	return out, nil
}

// Minify validates text and returns it with all insignificant whitespace
// removed. Validation failures propagate unchanged.
func (s *Document) Minify(text string) (string, error) {
	if err := s.Validate(text); err != nil {
		return "", err
	}
	out, err := s.codec.Minify(text)
	if err != nil {
		return "", s.annotate(err, text)
	}
	return out, nil
}

// annotate attaches a resolved position to a syntax error. The engine's
// structured offset takes priority; message scraping is the fallback for
// engines that only word their failures as free text. Non-syntax errors
// pass through untouched.
func (s *Document) annotate(err error, text string) error {
	var synErr *entities.SyntaxError
	if !errors.As(err, &synErr) {
		return err
	}
	if synErr.Pos != nil {
		return synErr
	}
	if synErr.Offset != entities.UnknownOffset {
		pos := entities.ResolvePosition(text, synErr.Offset)
		synErr.Pos = &pos
		return synErr
	}
	synErr.Pos = s.locator.Locate(synErr.Msg, text)
	return synErr
}
