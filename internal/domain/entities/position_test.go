package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePosition(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   Position
	}{
		{"start of buffer", "abc\ndef", 0, Position{Line: 1, Col: 1}},
		{"first char after newline", "abc\ndef", 4, Position{Line: 2, Col: 1}},
		{"end of single line", "hello", 5, Position{Line: 1, Col: 6}},
		{"middle of first line", "abc\ndef", 2, Position{Line: 1, Col: 3}},
		{"offset on the newline", "abc\ndef", 3, Position{Line: 1, Col: 4}},
		{"third line", "a\nb\nc", 4, Position{Line: 3, Col: 1}},
		{"empty buffer", "", 0, Position{Line: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePosition(tt.text, tt.offset))
		})
	}
}

func TestResolvePosition_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, Position{Line: 1, Col: 1}, ResolvePosition("abc", -5))
	assert.Equal(t, Position{Line: 1, Col: 4}, ResolvePosition("abc", 100))
}

func TestResolvePosition_CountsRuneColumns(t *testing.T) {
	// "héllo" - é is two bytes; the byte offset of 'l' is 3 but it is the
	// third character on the line.
	text := "héllo"
	assert.Equal(t, Position{Line: 1, Col: 3}, ResolvePosition(text, 3))
}

func TestResolvePosition_Monotonic(t *testing.T) {
	text := "one\ntwo\nthree"
	prev := ResolvePosition(text, 0)
	for offset := 1; offset <= len(text); offset++ {
		pos := ResolvePosition(text, offset)
		ordered := pos.Line > prev.Line || (pos.Line == prev.Line && pos.Col >= prev.Col)
		assert.True(t, ordered, "position went backwards at offset %d", offset)
		prev = pos
	}
}
