package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"maze.txt"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "maze.txt", cfg.MazePath)
	assert.Empty(t, cfg.SettingsPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.TurnPenalty)
	assert.Nil(t, cfg.StepCost)
	assert.Nil(t, cfg.Heading)
	assert.Nil(t, cfg.ExpectCost)
	assert.Nil(t, cfg.ExpectTiles)
}

func TestParse_AllFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{
		"-c", "cfg.hcl",
		"--turn-penalty", "0",
		"--step-cost", "2",
		"--heading", "north",
		"--expect-cost", "143564",
		"--expect-tiles", "593",
		"--log-format", "JSON",
		"--log-level", "debug",
		"maze.txt",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "cfg.hcl", cfg.SettingsPath)
	require.NotNil(t, cfg.TurnPenalty)
	assert.Equal(t, int64(0), *cfg.TurnPenalty)
	require.NotNil(t, cfg.StepCost)
	assert.Equal(t, int64(2), *cfg.StepCost)
	require.NotNil(t, cfg.Heading)
	assert.Equal(t, "north", *cfg.Heading)
	require.NotNil(t, cfg.ExpectCost)
	assert.Equal(t, int64(143564), *cfg.ExpectCost)
	require.NotNil(t, cfg.ExpectTiles)
	assert.Equal(t, 593, *cfg.ExpectTiles)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag":     {"--bogus", "maze.txt"},
		"TwoMazes":        {"a.txt", "b.txt"},
		"BadLogFormat":    {"--log-format", "xml", "maze.txt"},
		"BadLogLevel":     {"--log-level", "trace", "maze.txt"},
		"NegativePenalty": {"--turn-penalty", "-1", "maze.txt"},
		"NegativeStep":    {"--step-cost", "-1", "maze.txt"},
		"NotANumber":      {"--step-cost", "one", "maze.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, exit, err := cli.Parse(args, &out)
			assert.False(t, exit)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
