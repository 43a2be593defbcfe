// Package entities contains core domain data structures.
package entities

import "unicode/utf8"

// Position is a 1-based (line, column) location in a text buffer.
// Line counts newline-separated segments; Col counts runes since the
// last newline, so multi-byte input still gets a human-readable column.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// ResolvePosition converts a 0-based byte offset into a Position.
// Offsets outside [0, len(text)] are clamped to the buffer bounds.
func ResolvePosition(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line := 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Position{
		Line: line,
		Col:  utf8.RuneCountInString(text[lineStart:offset]) + 1,
	}
}
