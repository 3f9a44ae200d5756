package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned for figures without a single drawable point.
var ErrNoData = errors.New("nothing to plot")

// Line is one labelled x/y series. Points with a NaN coordinate are skipped.
type Line struct {
	Label string
	X, Y  []float64
}

func (l Line) xys() plotter.XYs {
	pts := make(plotter.XYs, 0, len(l.X))
	for i := range l.X {
		if i >= len(l.Y) || math.IsNaN(l.X[i]) || math.IsNaN(l.Y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: l.X[i], Y: l.Y[i]})
	}
	return pts
}

// LineFigure is a set of lines sharing axes.
type LineFigure struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string
	Lines    []Line
}

// Plot draws the figure with gonum/plot.
func (f *LineFigure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title(f.Title, f.Subtitle)
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())

	colors := palette(len(f.Lines))
	drawn := 0
	for i, l := range f.Lines {
		pts := l.xys()
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Label, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		points.GlyphStyle.Color = colors[i]
		points.GlyphStyle.Radius = vg.Points(2)
		p.Add(line, points)
		if l.Label != "" {
			p.Legend.Add(l.Label, line, points)
		}
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoData
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// HTML draws the figure with go-echarts.
func (f *LineFigure) HTML() (Renderer, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: f.Title, Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: f.Title, Subtitle: f.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: f.XLabel, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: f.YLabel, NameLocation: "middle", NameGap: 45}),
	)

	colors := palette(len(f.Lines))
	drawn := 0
	for i, l := range f.Lines {
		pts := l.xys()
		if len(pts) == 0 {
			continue
		}
		data := make([]opts.LineData, len(pts))
		for j, pt := range pts {
			data[j] = opts.LineData{Value: []interface{}{pt.X, pt.Y}}
		}
		line.AddSeries(l.Label, data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: hexColor(colors[i])}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(colors[i])}),
		)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoData
	}
	return line, nil
}
