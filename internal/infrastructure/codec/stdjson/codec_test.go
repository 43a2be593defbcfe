package stdjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jsonlens/internal/domain/entities"
)

func TestCodec_Check(t *testing.T) {
	codec := New()

	for _, text := range []string{
		`{"a": 1}`,
		`[1, 2, 3]`,
		`"string"`,
		`null`,
		`true`,
		`3.14`,
		`{"nested": {"deep": [null, {"x": "y"}]}}`,
	} {
		assert.NoError(t, codec.Check(text), "input %q", text)
	}
}

func TestCodec_Check_BigNumbers(t *testing.T) {
	codec := New()

	// Syntactically valid numbers outside float64 range must still pass;
	// validation never decodes values.
	assert.NoError(t, codec.Check(`123456789012345678901234567890`))
	assert.NoError(t, codec.Check(`{"big": 1e999}`))
}

func TestCodec_Check_TrailingComma(t *testing.T) {
	codec := New()

	err := codec.Check(`{"a": 1,}`)

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	// The offending '}' sits at byte index 8.
	assert.Equal(t, 8, synErr.Offset)
	assert.Contains(t, synErr.Msg, "invalid character")
}

func TestCodec_Check_TruncatedInput(t *testing.T) {
	codec := New()

	err := codec.Check(`{"a": `)

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Msg, "unexpected end of JSON input")
}

func TestCodec_Check_TrailingGarbage(t *testing.T) {
	codec := New()

	err := codec.Check(`{"a": 1} x`)

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.GreaterOrEqual(t, synErr.Offset, 8)
}

func TestCodec_Pretty_PreservesKeyOrder(t *testing.T) {
	codec := New()

	out, err := codec.Pretty(`{"b":1,"a":2}`, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}", out)
}

func TestCodec_Pretty_IndentWidth(t *testing.T) {
	codec := New()

	out, err := codec.Pretty(`{"a":1}`, 4)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}", out)
}

func TestCodec_Pretty_Invalid(t *testing.T) {
	codec := New()

	_, err := codec.Pretty(`{"a":`, 2)

	var synErr *entities.SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestCodec_Minify(t *testing.T) {
	codec := New()

	out, err := codec.Minify("{\n  \"b\" : 1,\n  \"a\" : [ 1, 2 ]\n}")
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":[1,2]}`, out)
}

func TestCodec_Minify_PreservesNumericLiterals(t *testing.T) {
	codec := New()

	// Reformatting rewrites whitespace only; the literal is not run
	// through float64.
	out, err := codec.Minify(`{ "x": 1.2300000000000000000001 }`)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1.2300000000000000000001}`, out)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := New()
	text := `{"b": [1, 2, {"c": null}], "a": "text"}`

	pretty, err := codec.Pretty(text, 2)
	require.NoError(t, err)
	require.NoError(t, codec.Check(pretty))

	minified, err := codec.Minify(pretty)
	require.NoError(t, err)
	direct, err := codec.Minify(text)
	require.NoError(t, err)
	assert.Equal(t, direct, minified)
}
