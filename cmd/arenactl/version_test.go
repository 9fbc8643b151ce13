package main

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionMatchesRootFlag(t *testing.T) {
	require.Equal(t, version, rootCmd.Version)
}

func TestVersionCommand(t *testing.T) {
	resetFlags()
	verbose = true
	output, err := captureOutput(t, func() error { return runVersion(nil) })
	require.NoError(t, err)
	assertContains(t, output, []string{
		"arenactl " + version,
		"commit: " + commit,
		runtime.Version(),
		"default backend:",
	})
}

func TestVersionJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	output, err := captureOutput(t, func() error { return runVersion(nil) })
	require.NoError(t, err)
	assertJSON(t, output)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	require.Equal(t, version, info.Version)
	require.Equal(t, runtime.Version(), info.GoVersion)
	require.NotEmpty(t, info.DefaultBackend)
	require.NotEmpty(t, info.ArenaVersion)
}
