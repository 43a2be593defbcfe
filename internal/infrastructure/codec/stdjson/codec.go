// Package stdjson implements the Codec port on the standard library JSON engine.
package stdjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ersonp/jsonlens/internal/domain/entities"
)

// Codec validates and reformats JSON text using encoding/json. Indent and
// Compact rewrite the raw input bytes rather than decoding into Go values,
// so object key order and numeric literals survive byte-for-byte.
type Codec struct{}

// New creates a new codec.
func New() *Codec {
	return &Codec{}
}

// Check reports whether text is syntactically valid JSON.
func (c *Codec) Check(text string) error {
	// Unmarshal into RawMessage runs the full syntax scan without decoding
	// values, so numbers outside float64 range still validate.
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return toSyntaxError(err)
	}
	return nil
}

// Pretty returns text reindented with indentWidth spaces per level.
func (c *Codec) Pretty(text string, indentWidth int) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", strings.Repeat(" ", indentWidth)); err != nil {
		return "", toSyntaxError(err)
	}
	return buf.String(), nil
}

// Minify returns text with all insignificant whitespace removed.
func (c *Codec) Minify(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return "", toSyntaxError(err)
	}
	return buf.String(), nil
}

// toSyntaxError converts an engine failure into the domain error type.
// The engine reports Offset as bytes consumed including the offending
// byte; the domain offset is the 0-based index of that byte.
func toSyntaxError(err error) error {
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		offset := int(synErr.Offset) - 1
		if offset < 0 {
			offset = entities.UnknownOffset
		}
		return &entities.SyntaxError{Msg: synErr.Error(), Offset: offset}
	}
	return &entities.SyntaxError{Msg: err.Error(), Offset: entities.UnknownOffset}
}
