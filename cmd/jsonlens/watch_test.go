package main

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	printed, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(printed)
}

func TestWatchStateCopyOutput(t *testing.T) {
	state := &watchState{lastOutput: "{\n  \"a\": 1\n}"}

	var copyErr error
	printed := captureStdout(t, func() {
		copyErr = state.copyOutput()
	})

	require.NoError(t, copyErr)
	assert.Equal(t, state.lastOutput+"\n", printed)
	assert.False(t, state.outputSaved, "copying must not count as saving")
}

func TestWatchStateCopyOutputNothingPending(t *testing.T) {
	state := &watchState{}

	err := state.copyOutput()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output to copy")
}

func TestWatchStateHandleCommandCopy(t *testing.T) {
	state := &watchState{lastOutput: `{"a":1}`}

	var handled, exit bool
	printed := captureStdout(t, func() {
		handled, exit = state.handleCommand(context.Background(), "copy", nil)
	})

	assert.True(t, handled)
	assert.False(t, exit)
	assert.Equal(t, state.lastOutput+"\n", printed)
}
