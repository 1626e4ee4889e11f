package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/dynarray/dynarray"
	"github.com/katalvlaran/dynarray/internal/render"
	"github.com/katalvlaran/dynarray/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTrace(t *testing.T) *script.Trace {
	t.Helper()
	tr, err := script.Run(script.Default(), dynarray.New[any]())
	require.NoError(t, err)

	return tr
}

// TestTable_Plain checks the uncoloured table has one line per step plus a title.
func TestTable_Plain(t *testing.T) {
	render.SetColor(false)
	defer render.SetColor(true)

	tr := defaultTrace(t)
	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, tr))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(tr.Entries)+1)
	assert.Equal(t, "script: demo", lines[0])
	assert.Contains(t, lines[12], "[10, 50, 30, 40, 60, 70]")
	assert.Contains(t, lines[12], "count=6 cap=8")
	assert.Contains(t, lines[8], "→ 40")
}

// TestTable_ShowsErrors verifies recorded errors are printed.
func TestTable_ShowsErrors(t *testing.T) {
	render.SetColor(false)
	defer render.SetColor(true)

	s := &script.Script{Name: "bad", Steps: []script.Step{{Op: script.OpDeleteLast}}}
	tr, err := script.Run(s, dynarray.New[any]())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, tr))
	assert.Contains(t, buf.String(), "error: "+dynarray.ErrEmptyArray.Error())
}

// TestPlot checks the chart carries the caption and is empty for no entries.
func TestPlot(t *testing.T) {
	render.SetColor(false)
	defer render.SetColor(true)

	out := render.Plot(defaultTrace(t))
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "capacity (top) and count per step: demo")

	assert.Empty(t, render.Plot(&script.Trace{Script: "none"}))
}
