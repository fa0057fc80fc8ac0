package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCmdFlags(t *testing.T) {
	cmd := fetchCmd()

	start := cmd.Flag("start")
	require.NotNil(t, start)
	assert.Equal(t, defaultStartDate, start.DefValue)

	end := cmd.Flag("end")
	require.NotNil(t, end)
	assert.Equal(t, defaultEndDate, end.DefValue)

	noCache := cmd.Flag("no-cache")
	require.NotNil(t, noCache)
	assert.Equal(t, "false", noCache.DefValue)
}

func TestCategorizeCmdFlags(t *testing.T) {
	cmd := categorizeCmd()

	for _, name := range []string{"start", "end", "output", "no-prices"} {
		assert.NotNil(t, cmd.Flag(name), "flag %s should exist", name)
	}
	assert.Equal(t, "o", cmd.Flag("output").Shorthand)
}

func TestRunCmdFlags(t *testing.T) {
	cmd := runCmd()

	for _, name := range []string{"start", "end", "output", "no-cache", "no-prices", "sheets"} {
		assert.NotNil(t, cmd.Flag(name), "flag %s should exist", name)
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	want := map[string]bool{
		"fetch": false, "categorize": false, "run": false,
		"patterns": false, "version": false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "subcommand %s should be registered", name)
	}
}

func TestPatternsCmdUnknownAxis(t *testing.T) {
	cmd := patternsCmd()
	cmd.SetArgs([]string{"Spænding"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown axis")
}

func TestPatternsCmdListsAllAxes(t *testing.T) {
	cmd := patternsCmd()
	cmd.SetArgs([]string{})

	assert.NoError(t, cmd.Execute())
}
