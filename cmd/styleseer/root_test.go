package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/config"
)

func TestRootHelpListsCommands(t *testing.T) {
	out, err := executeCommand()
	require.NoError(t, err)
	require.Contains(t, out, "analyze")
	require.Contains(t, out, "render")
	require.Contains(t, out, "diff")
	require.Contains(t, out, "history")
	require.Contains(t, out, "mcp")
	require.Contains(t, out, "version")
}

func TestNewLoggerLevelAndFormat(t *testing.T) {
	cfg := config.Default()

	log, err := newLogger(&rootFlags{}, &cfg)
	require.NoError(t, err)
	require.NotNil(t, log)

	log, err = newLogger(&rootFlags{verbose: true, logFormat: "json"}, &cfg)
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = newLogger(&rootFlags{}, &config.Config{Logging: config.LoggingConfig{Level: "loud"}})
	require.Error(t, err)
}

func TestCommandErrorMessage(t *testing.T) {
	err := newCommandError("analyze", "collecting https://example.com", errors.New("timeout"), "Pass --static to skip the browser.")

	msg := err.Error()
	require.Contains(t, msg, "Failed to analyze: collecting https://example.com")
	require.Contains(t, msg, "Error: timeout")
	require.Contains(t, msg, "Suggestion: Pass --static to skip the browser.")
}
