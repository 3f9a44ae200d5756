// Package chart renders benchmark series and evaluation results as static
// plots (gonum/plot) or interactive HTML pages (go-echarts).
package chart

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/banshee-data/evaltools/internal/fsutil"
	"github.com/banshee-data/evaltools/internal/monitoring"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Figure is anything that can be drawn by both backends.
type Figure interface {
	Plot() (*plot.Plot, error)
	HTML() (Renderer, error)
}

// Renderer writes an HTML page.
type Renderer interface {
	Render(w io.Writer) error
}

// Size is the output size in inches. It is ignored for HTML output, which
// fills the browser window.
type Size struct {
	Width, Height float64
}

// DefaultSize matches the plots the evaluation tooling produced before.
var DefaultSize = Size{Width: 10, Height: 6}

// Format derives the output format from the file extension.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Save renders fig into path, choosing the backend by extension. The figure
// is rendered completely before path is written, so a failed render leaves
// no partial file behind.
func Save(fsys fsutil.FileSystem, fig Figure, path string, size Size) error {
	format := Format(path)
	if format == "" {
		return fmt.Errorf("output %q has no extension to pick a format from", path)
	}

	var buf bytes.Buffer
	if err := render(&buf, fig, format, size); err != nil {
		return err
	}

	if err := fsutil.EnsureParent(fsys, path); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := fsys.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	monitoring.Logf("wrote %s", path)
	return nil
}

func render(w io.Writer, fig Figure, format string, size Size) error {
	if format == "html" || format == "htm" {
		r, err := fig.HTML()
		if err != nil {
			return err
		}
		if err := r.Render(w); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		return nil
	}

	p, err := fig.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("format %q: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}

func title(t, subtitle string) string {
	if subtitle == "" {
		return t
	}
	return t + "\n" + subtitle
}
