package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reeflective/parseargs"
)

// Completion storage is global to carapace: commands
// are generated and executed sequentially.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rootCmd := newRootCommand()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	tt := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "no tokens",
			args:     nil,
			expected: `{"":[]}`,
		},
		{
			name:     "positional tokens",
			args:     []string{"--", "bar", "baz"},
			expected: `{"":["bar","baz"]}`,
		},
		{
			name:     "shorthands and flags",
			args:     []string{"-s", "v=verbose,n=name", "-f", "verbose", "--", "-v", "-n", "foo", "bar"},
			expected: `{"":["bar"],"verbose":true,"name":["foo"]}`,
		},
		{
			name:     "unknown shorthands",
			args:     []string{"--", "-x", "dropped", "kept"},
			expected: `{"":["kept"]}`,
		},
		{
			name:     "kept shorthands",
			args:     []string{"-k", "--", "-x", "val"},
			expected: `{"":[],"x":["val"]}`,
		},
		{
			name:     "second separator",
			args:     []string{"--", "--foo", "--", "--bar"},
			expected: `{"":[],"foo":[null],"--":["--bar"]}`,
		},
		{
			name:     "compat format",
			args:     []string{"--format", "compat", "--", "--foo", "--bar", "a", "--bar", "b"},
			expected: `{"":[],"foo":null,"bar":["a","b"]}`,
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			stdout, _, err := execute(t, test.args...)
			require.NoError(t, err)
			require.Equal(t, test.expected+"\n", stdout)
		})
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
option "verbose" {
  shorthand = "v"
  flag      = true
}
`), 0o600))

	stdout, _, err := execute(t, "--config", path, "--", "-v", "pos")
	require.NoError(t, err)
	require.Equal(t, `{"":["pos"],"verbose":true}`+"\n", stdout)

	_, stderr, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, parseargs.ErrConfigFile)
	require.Contains(t, stderr, "Failed to load configuration")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	_, stderr, err := execute(t, "-f", "--verbose", "--", "x")
	require.ErrorIs(t, err, parseargs.ErrInvalidConfig)
	require.Contains(t, stderr, "Invalid configuration")

	_, _, err = execute(t, "-s", "verbose=v")
	require.Error(t, err)

	_, _, err = execute(t, "--format", "yaml")
	require.Error(t, err)
}

func TestRootCommand_DebugLog(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "--", "--a", "b")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"Tokenized arguments"`)
	require.Contains(t, stderr, `"options":1`)
}
