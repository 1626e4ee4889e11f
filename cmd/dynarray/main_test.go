package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	withPlot, noColor = false, false
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()

	return buf.String(), err
}

// TestRun_Default runs the built-in script.
func TestRun_Default(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "script: demo")
	assert.Contains(t, out, "[10, 50, 30, 40, 60, 70]")
	assert.NotContains(t, out, "failed")
}

// TestRun_WithPlot appends the chart.
func TestRun_WithPlot(t *testing.T) {
	out, err := execute(t, "run", "--plot")
	require.NoError(t, err)
	assert.Contains(t, out, "capacity (top) and count per step")
}

// TestRun_FileWithFailures reports failed steps without failing the command.
func TestRun_FileWithFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	src := "name: f\nsteps:\n  - {op: delete_last}\n  - {op: append, value: x}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 step(s) failed")
	assert.Contains(t, out, "[x]")
}

// TestRun_BadFile surfaces load errors.
func TestRun_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {op: pop}\n"), 0o644))

	_, err := execute(t, "run", path)
	assert.Error(t, err)
}

// TestScript_RoundTrip dumps the default script and replays it.
func TestScript_RoundTrip(t *testing.T) {
	out, err := execute(t, "script")
	require.NoError(t, err)
	assert.Contains(t, out, "name: demo")

	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	plotted, err := execute(t, "plot", path)
	require.NoError(t, err)
	assert.Contains(t, plotted, "count per step: demo")
}
