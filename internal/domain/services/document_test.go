package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/mocks"
)

func newTestDocument(codec *mocks.Codec) *Document {
	return NewDocument(codec, NewLocator())
}

func TestDocument_Validate(t *testing.T) {
	doc := newTestDocument(&mocks.Codec{})

	require.NoError(t, doc.Validate(`{"a": 1}`))
}

func TestDocument_Validate_EmptyInput(t *testing.T) {
	doc := newTestDocument(&mocks.Codec{})

	assert.ErrorIs(t, doc.Validate(""), entities.ErrEmptyInput)
	assert.ErrorIs(t, doc.Validate("  \n\t  "), entities.ErrEmptyInput)
}

func TestDocument_Validate_ResolvesStructuredOffset(t *testing.T) {
	codec := &mocks.Codec{
		Err: &entities.SyntaxError{Msg: "invalid character '}'", Offset: 4},
	}
	doc := newTestDocument(codec)

	err := doc.Validate("abc\ndef")

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.NotNil(t, synErr.Pos)
	assert.Equal(t, entities.Position{Line: 2, Col: 1}, *synErr.Pos)
	assert.Equal(t, "invalid character '}' (line 2, column 1)", err.Error())
}

func TestDocument_Validate_FallsBackToMessageScraping(t *testing.T) {
	codec := &mocks.Codec{
		Err: &entities.SyntaxError{Msg: "bad token at line 3 column 5", Offset: entities.UnknownOffset},
	}
	doc := newTestDocument(codec)

	err := doc.Validate("{\n\n garbage\n}")

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.NotNil(t, synErr.Pos)
	assert.Equal(t, entities.Position{Line: 3, Col: 5}, *synErr.Pos)
}

func TestDocument_Validate_UnlocatableMessage(t *testing.T) {
	codec := &mocks.Codec{
		Err: &entities.SyntaxError{Msg: "something exploded", Offset: entities.UnknownOffset},
	}
	doc := newTestDocument(codec)

	err := doc.Validate("{}")

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Nil(t, synErr.Pos)
	assert.Equal(t, "something exploded", err.Error())
}

func TestDocument_Validate_PassesThroughForeignErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	doc := newTestDocument(&mocks.Codec{Err: boom})

	assert.ErrorIs(t, doc.Validate("{}"), boom)
}

func TestDocument_Prettify(t *testing.T) {
	codec := &mocks.Codec{PrettyResult: "{\n  \"a\": 1\n}"}
	doc := newTestDocument(codec)

	out, err := doc.Prettify(`{"a":1}`, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)
	assert.Equal(t, 2, codec.IndentWidth)
}

func TestDocument_Prettify_DefaultIndent(t *testing.T) {
	codec := &mocks.Codec{}
	doc := newTestDocument(codec)

	_, err := doc.Prettify(`{"a":1}`, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultIndentWidth, codec.IndentWidth)
}

func TestDocument_Prettify_PropagatesValidationFailure(t *testing.T) {
	doc := newTestDocument(&mocks.Codec{})

	_, err := doc.Prettify("   ", 2)
	assert.ErrorIs(t, err, entities.ErrEmptyInput)
}

func TestDocument_Minify(t *testing.T) {
	codec := &mocks.Codec{MinifyResult: `{"a":1}`}
	doc := newTestDocument(codec)

	out, err := doc.Minify(`{ "a" : 1 }`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestDocument_Minify_PropagatesSyntaxFailure(t *testing.T) {
	codec := &mocks.Codec{
		Err: &entities.SyntaxError{Msg: "invalid character ','", Offset: 8},
	}
	doc := newTestDocument(codec)

	_, err := doc.Minify(`{"a": 1,}`)

	var synErr *entities.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.NotNil(t, synErr.Pos)
	assert.Equal(t, entities.Position{Line: 1, Col: 9}, *synErr.Pos)
}
