package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quickunion/internal/cli"
)

// exitCode unwraps an *cli.ExitError or fails the test.
func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "want *cli.ExitError, got %v", err)

	return exitErr.Code
}

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"data/tinyUF.txt"}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &cli.Config{InputPath: "data/tinyUF.txt", LogLevel: "warn"}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_LogLevel(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-log-level", "DEBUG", "in.txt"}, &bytes.Buffer{})
	require.NoError(t, err)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)
}

func TestParse_MissingInput(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	assert.Nil(t, cfg)
	assert.False(t, exit)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{""}, &out)
	assert.Nil(t, cfg)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_TooManyInputs(t *testing.T) {
	_, _, err := cli.Parse([]string{"a.txt", "b.txt"}, &bytes.Buffer{})
	assert.Equal(t, 1, exitCode(t, err))
}

func TestParse_BadFlags(t *testing.T) {
	_, _, err := cli.Parse([]string{"-nope", "a.txt"}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(t, err))

	_, _, err = cli.Parse([]string{"-log-level", "loud", "a.txt"}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(t, err))
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "-log-level")
}
