package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/radialnav/radial"
	"github.com/stretchr/testify/require"
)

const menuYAML = `
items:
  - label: Home
    icon: H
  - label: Search
    icon: S
  - label: Mail
    icon: M
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", writeConfig(t, menuYAML)}, nil, &stdout, &stderr)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout.String(), "<svg "))
	require.Equal(t, 3, strings.Count(stdout.String(), `class="g-nav"`))
	require.NotContains(t, stdout.String(), "g-debug")
	require.Contains(t, stderr.String(), "laid out menu")
	require.NotContains(t, stderr.String(), "built menu slot")
}

func TestRunOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "menu.svg")
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", writeConfig(t, menuYAML), "-o", out, "-debug", "-precision", "1", "-v"}, nil, &stdout, &stderr)
	require.NoError(t, err)
	require.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), `class="g-debug"`)
	require.Contains(t, stderr.String(), "built menu slot")
	require.Contains(t, stderr.String(), "wrote menu")
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", "-"}, strings.NewReader(menuYAML), &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), ">Search</textPath>")
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, nil, &stdout, &stderr)
	require.EqualError(t, err, "config file required")

	err = run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = run([]string{"-config", writeConfig(t, "spacing: -1\n")}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, radial.ErrInvalidSpec)

	err = run([]string{"-config", writeConfig(t, menuYAML+"fillet: 80\n")}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, radial.ErrInvalidFillet)

	err = run([]string{"-config", writeConfig(t, menuYAML), "extra"}, nil, &stdout, &stderr)
	require.Error(t, err)

	err = run([]string{"-nosuchflag"}, nil, &stdout, &stderr)
	require.Error(t, err)
}
