package chart

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxFigure draws one box per sample at the given x positions.
type BoxFigure struct {
	Title     string
	Subtitle  string
	XLabel    string
	YLabel    string
	Labels    []string
	Positions []float64
	Samples   [][]float64
}

// FiveNumbers is the box plot summary of a sample.
type FiveNumbers struct {
	Min, Q1, Median, Q3, Max float64
}

// Summarize computes the five number summary of sample using linear
// interpolation between order statistics.
func Summarize(sample []float64) (FiveNumbers, bool) {
	if len(sample) == 0 {
		return FiveNumbers{}, false
	}
	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)
	return FiveNumbers{
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}, true
}

func (f *BoxFigure) label(i int) string {
	if i < len(f.Labels) {
		return f.Labels[i]
	}
	return strconv.Itoa(i + 1)
}

func (f *BoxFigure) position(i int) float64 {
	if i < len(f.Positions) {
		return f.Positions[i]
	}
	return float64(i + 1)
}

// Plot draws the figure with gonum/plot. Empty samples keep their tick but
// get no box.
func (f *BoxFigure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title(f.Title, f.Subtitle)
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	ticks := make([]plot.Tick, 0, len(f.Samples))
	drawn := 0
	for i, sample := range f.Samples {
		pos := f.position(i)
		ticks = append(ticks, plot.Tick{Value: pos, Label: f.label(i)})
		if len(sample) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(20), pos, plotter.Values(sample))
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", f.label(i), err)
		}
		p.Add(box)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoData
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = f.position(0) - 0.5
	p.X.Max = f.position(len(f.Samples)-1) + 0.5
	return p, nil
}

// HTML draws the figure with go-echarts. The category axis cannot express
// the proportional positions, so boxes are evenly spaced there.
func (f *BoxFigure) HTML() (Renderer, error) {
	bp := charts.NewBoxPlot()
	bp.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: f.Title, Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: f.Title, Subtitle: f.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: f.XLabel, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.YLabel, NameLocation: "middle", NameGap: 45}),
	)

	labels := make([]string, 0, len(f.Samples))
	data := make([]opts.BoxPlotData, 0, len(f.Samples))
	for i, sample := range f.Samples {
		s, ok := Summarize(sample)
		if !ok {
			continue
		}
		labels = append(labels, f.label(i))
		data = append(data, opts.BoxPlotData{
			Name:  f.label(i),
			Value: []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max},
		})
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}
	bp.SetXAxis(labels).AddSeries(f.YLabel, data)
	return bp, nil
}
