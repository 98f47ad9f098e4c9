package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsListsBuiltinLibrary(t *testing.T) {
	out, err := executeCommand(t, "commands")
	require.NoError(t, err)

	assert.Contains(t, out, "rounded glass panel")
	assert.Contains(t, out, "high contrast")
}

func TestCommandsWithStylesShowsFragments(t *testing.T) {
	out, err := executeCommand(t, "commands", "--styles")
	require.NoError(t, err)

	assert.Contains(t, out, "radius: 24px")
}

func TestComponentsListsBuiltinRegistry(t *testing.T) {
	out, err := executeCommand(t, "components")
	require.NoError(t, err)

	assert.Contains(t, out, "scan.preview")
	assert.Contains(t, out, "print.queue")
	assert.Contains(t, out, "Live scanner preview pane")
}

func TestInterpretShowsMatches(t *testing.T) {
	out, err := executeCommand(t, "interpret", "make", "it", "dark", "and", "compact")
	require.NoError(t, err)

	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "compact")
}

func TestInterpretNoMatches(t *testing.T) {
	out, err := executeCommand(t, "interpret", "xyzzy")
	require.NoError(t, err)

	assert.Contains(t, out, "no commands matched")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Inkwell")
}
