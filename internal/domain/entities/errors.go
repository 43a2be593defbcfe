package entities

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an operation receives empty or
// whitespace-only input.
var ErrEmptyInput = errors.New("input is empty or contains only whitespace")

// UnknownOffset marks a SyntaxError whose engine did not report where the
// failure occurred.
const UnknownOffset = -1

// SyntaxError describes a rejected input. Msg is the underlying engine's
// message verbatim. Offset is the 0-based byte index of the offending
// character, or UnknownOffset. Pos is filled in once a location has been
// resolved; it stays nil when no location could be determined.
type SyntaxError struct {
	Msg    string
	Offset int
	Pos    *Position
}

// Error returns the engine message, suffixed with the resolved location
// when one is available.
func (e *SyntaxError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Pos.Line, e.Pos.Col)
	}
	return e.Msg
}
