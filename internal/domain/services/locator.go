// Package services contains domain logic for validating, locating errors in,
// and rendering excerpts of JSON text.
package services

import (
	"regexp"
	"strconv"

	"github.com/ersonp/jsonlens/internal/domain/entities"
)

// Heuristic patterns for scraping a location out of free-text parser
// messages. Applied in order; the first match wins.
var (
	rePosition   = regexp.MustCompile(`(?i)position\s+(\d+)`)
	reAt         = regexp.MustCompile(`(?i)\bat\s+(\d+)`)
	reAtPosition = regexp.MustCompile(`(?i)at position\s+(\d+)`)
	reLineColumn = regexp.MustCompile(`(?i)at line (\d+) column (\d+)`)
	reDigitRun   = regexp.MustCompile(`\d{1,6}`)
)

// Locator infers error positions from unstandardized parser messages.
// It is strictly best-effort: engines are free to word failures however
// they like, so callers must treat a nil result as "no position available"
// and still show the raw message. Engines that report the offset as
// structured data bypass this entirely (see Document).
type Locator struct{}

// NewLocator creates a new locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate extracts or infers a position from a parser failure message.
// Offsets found in the message are resolved against text; an explicit
// "line N column M" is returned as-is without consulting the buffer.
// Returns nil when no rule matches. Locate never fails.
func (l *Locator) Locate(message, text string) *entities.Position {
	for _, re := range []*regexp.Regexp{rePosition, reAt, reAtPosition} {
		if m := re.FindStringSubmatch(message); m != nil {
			return resolveOffset(text, m[1])
		}
	}

	if m := reLineColumn.FindStringSubmatch(message); m != nil {
		line, err1 := strconv.Atoi(m[1])
		col, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return &entities.Position{Line: line, Col: col}
		}
	}

	// Last resort: the first short digit run anywhere in the message,
	// treated as an offset. Known to misfire on messages that quote
	// unrelated numbers; kept deliberately weak behind the rules above.
	if m := reDigitRun.FindString(message); m != "" {
		return resolveOffset(text, m)
	}

	return nil
}

func resolveOffset(text, digits string) *entities.Position {
	offset, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	pos := entities.ResolvePosition(text, offset)
	return &pos
}
