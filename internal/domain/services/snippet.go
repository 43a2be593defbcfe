package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/jsonlens/internal/domain/entities"
)

// Default context widths for rendered snippets.
const (
	DefaultContextBefore = 3
	DefaultContextAfter  = 2
)

// Snippet renders line-numbered excerpts of a text buffer around an error
// position, with a caret marker on the offending line.
type Snippet struct {
	before int
	after  int
}

// NewSnippet creates a snippet renderer with the given context widths.
// Non-positive widths fall back to the defaults.
func NewSnippet(before, after int) *Snippet {
	if before <= 0 {
		before = DefaultContextBefore
	}
	if after <= 0 {
		after = DefaultContextAfter
	}
	return &Snippet{before: before, after: after}
}

// Render returns the lines surrounding pos, each prefixed with its number
// and a marker, followed by a blank line and the error message. It always
// produces output, degrading gracefully for short buffers.
func (s *Snippet) Render(text string, pos entities.Position, message string) string {
	lines := strings.Split(text, "\n")

	start := pos.Line - s.before
	if start < 1 {
		start = 1
	}
	end := pos.Line + s.after
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for n := start; n <= end; n++ {
		marker := "  "
		if n == pos.Line {
			marker = "▶ "
		}
		fmt.Fprintf(&b, "%3d %s%s\n", n, marker, lines[n-1])
	}
	b.WriteString("\nError: " + message)

	return b.String()
}
