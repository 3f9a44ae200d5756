package chart

import (
	"strconv"

	"github.com/banshee-data/evaltools/internal/benchtable"
	"github.com/banshee-data/evaltools/internal/evalresult"
)

// SeriesFigure plots a selected benchmark series titled with its filters.
func SeriesFigure(s *benchtable.Series) *LineFigure {
	return &LineFigure{
		Title:  s.Title,
		XLabel: s.XLabel,
		YLabel: s.YLabel,
		Lines:  []Line{{X: s.X, Y: s.Y}},
	}
}

// AccuracyBoxFigure shows the accuracy distribution of merged results per
// stddev value, spaced proportionally to the stddev gaps.
func AccuracyBoxFigure(m *evalresult.Merged) *BoxFigure {
	labels := make([]string, len(m.StddevValues))
	for i, s := range m.StddevValues {
		labels[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return &BoxFigure{
		Title:     m.Algorithm,
		Subtitle:  m.Subtitle(),
		XLabel:    "stddev",
		YLabel:    "accuracy",
		Labels:    labels,
		Positions: evalresult.BoxPositions(m.StddevValues),
		Samples:   m.Samples,
	}
}

// ExecutionTimeFigure compares the time per iteration of several runs.
func ExecutionTimeFigure(results []*evalresult.Result) *LineFigure {
	f := &LineFigure{
		Title:  "Execution Time Comparison",
		XLabel: "stddev",
		YLabel: "Execution Time in s",
	}
	for _, r := range results {
		f.Lines = append(f.Lines, Line{
			Label: r.Label(true),
			X:     evalresult.Covered(r),
			Y:     evalresult.ExecutionTimes(r),
		})
	}
	return f
}

// AverageAccuracyFigure compares the mean accuracy of several runs.
func AverageAccuracyFigure(results []*evalresult.Result) *LineFigure {
	f := &LineFigure{
		Title:  "Accuracy Comparison",
		XLabel: "stddev",
		YLabel: "Average accuracy",
	}
	for _, r := range results {
		f.Lines = append(f.Lines, Line{
			Label: r.Label(false),
			X:     evalresult.Covered(r),
			Y:     evalresult.AverageAccuracies(r),
		})
	}
	return f
}
