// Package render draws a script.Trace for the terminal: a styled per-step
// table (lipgloss) and a count/capacity plot (asciigraph).
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/dynarray/internal/script"
)

const (
	plotHeight = 10
	plotWidth  = 60
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	opStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).Width(12)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))

	plain = lipgloss.NewStyle()
)

var colorEnabled = true

// SetColor toggles styling. With color off every style renders plain text.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func style(s lipgloss.Style) lipgloss.Style {
	if !colorEnabled {
		return plain
	}

	return s
}

// Table writes one line per trace entry:
//
//	3 append       count=3 cap=4  [10, 20, 30]
//	8 get          → 40     count=4 cap=4  [10, 20, 30, 40]
func Table(w io.Writer, tr *script.Trace) error {
	if _, err := fmt.Fprintln(w, style(titleStyle).Render("script: "+tr.Script)); err != nil {
		return err
	}
	for _, e := range tr.Entries {
		line := fmt.Sprintf("%3d %s", e.Step, style(opStyle).Render(string(e.Op)))
		if e.Result != "" {
			line += " → " + style(valueStyle).Render(e.Result)
		}
		line += " " + style(dimStyle).Render(fmt.Sprintf("count=%d cap=%d", e.Count, e.Capacity))
		line += "  " + e.Rendered
		if e.Err != "" {
			line += "  " + style(errStyle).Render("error: "+e.Err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Plot returns an asciigraph chart of capacity and count over the steps.
// An empty trace yields an empty string.
func Plot(tr *script.Trace) string {
	if len(tr.Entries) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("capacity (top) and count per step: " + tr.Script),
	}
	if colorEnabled {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Green))
	}

	return asciigraph.PlotMany([][]float64{tr.Capacities(), tr.Counts()}, opts...)
}
