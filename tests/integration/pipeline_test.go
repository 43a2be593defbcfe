package integration

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/services"
)

func TestPipeline_TrailingComma(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	document := newDocument()
	text := `{"a": 1,}`

	err := document.Validate(text)

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.NotNil(t, synErr.Pos)
	assert.Equal(t, entities.Position{Line: 1, Col: 9}, *synErr.Pos)
	assert.Contains(t, err.Error(), "(line 1, column 9)")

	snippet := services.NewSnippet(3, 2)
	rendered := snippet.Render(text, *synErr.Pos, synErr.Msg)
	assert.Contains(t, rendered, "  1 ▶ "+text)
	assert.Contains(t, rendered, "\nError: ")
}

func TestPipeline_MultilineErrorPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	document := newDocument()
	text := "{\n  \"a\": 1,\n}"

	err := document.Validate(text)

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.NotNil(t, synErr.Pos)
	assert.Equal(t, entities.Position{Line: 3, Col: 1}, *synErr.Pos)

	snippet := services.NewSnippet(3, 2)
	rendered := snippet.Render(text, *synErr.Pos, synErr.Msg)
	assert.Contains(t, rendered, "  3 ▶ }")
	assert.Contains(t, rendered, "  1   {")
}

func TestPipeline_RoundTripStability(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	document := newDocument()

	inputs := []string{
		`{"b": 1, "a": [true, null, "x"]}`,
		`[1, 2.5, {"nested": {"k": "v"}}]`,
		`"just a string"`,
		`{"unicode": "héllo ▶ wörld", "num": 1.2300000000000000000001}`,
	}

	for _, text := range inputs {
		pretty, err := document.Prettify(text, 2)
		require.NoError(t, err, "input %q", text)
		require.NoError(t, document.Validate(pretty), "prettified %q must validate", text)

		minViaPretty, err := document.Minify(pretty)
		require.NoError(t, err)
		minDirect, err := document.Minify(text)
		require.NoError(t, err)
		assert.Equal(t, minDirect, minViaPretty, "reformatting must be semantically idempotent for %q", text)
	}
}

func TestPipeline_KeyOrderSurvivesReformatting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	document := newDocument()

	pretty, err := document.Prettify(`{"z": 1, "a": 2, "m": 3}`, 2)
	require.NoError(t, err)

	zIdx := strings.Index(pretty, `"z"`)
	aIdx := strings.Index(pretty, `"a"`)
	mIdx := strings.Index(pretty, `"m"`)
	assert.True(t, zIdx < aIdx && aIdx < mIdx, "key insertion order must be preserved:\n%s", pretty)
}

func TestPipeline_EmptyInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	document := newDocument()

	assert.True(t, errors.Is(document.Validate(""), entities.ErrEmptyInput))
	assert.True(t, errors.Is(document.Validate(" \t\n "), entities.ErrEmptyInput))

	_, err := document.Minify("\n\n")
	assert.True(t, errors.Is(err, entities.ErrEmptyInput))
}
