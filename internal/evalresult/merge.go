package evalresult

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrAlgorithmMismatch is returned when merging results of different algorithms.
	ErrAlgorithmMismatch = errors.New("tried to merge results of different algorithms")
	// ErrIterationMismatch is returned when merged stddev columns disagree on Iterations.
	ErrIterationMismatch = errors.New("merged results have different iteration counts")
	// ErrNoResults is returned when nothing was given to merge.
	ErrNoResults = errors.New("no results to merge")
)

// Merged is the union of several results of one algorithm. Samples[i] holds
// the accuracies recorded for StddevValues[i].
type Merged struct {
	Algorithm    string
	StddevValues []float64
	Samples      [][]float64

	// PointsPerPlane and Iterations are nil unless all inputs agree.
	PointsPerPlane *int
	Iterations     *int
}

type source struct {
	stddev float64
	result int
	index  int
}

// Merge combines results of the same algorithm. For a stddev value present
// in several inputs the first input providing it wins. The merged stddev
// values are sorted in ascending order.
func Merge(results ...*Result) (*Merged, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	m := &Merged{Algorithm: results[0].Algorithm}
	for _, r := range results[1:] {
		if r.Algorithm != m.Algorithm {
			return nil, fmt.Errorf("%w: %q and %q", ErrAlgorithmMismatch, m.Algorithm, r.Algorithm)
		}
	}
	m.PointsPerPlane = common(results, func(r *Result) int { return r.PointsPerPlane })
	m.Iterations = common(results, func(r *Result) int { return r.Iterations })

	var order []source
	seen := map[float64]bool{}
	for i, r := range results {
		for j, s := range r.StddevValues {
			if seen[s] {
				continue
			}
			seen[s] = true
			order = append(order, source{stddev: s, result: i, index: j})
		}
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no stddev values", ErrNoResults)
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].stddev < order[b].stddev })

	iterations := results[order[0].result].Iterations
	for _, src := range order {
		if it := results[src.result].Iterations; it != iterations {
			return nil, fmt.Errorf("%w: %d and %d", ErrIterationMismatch, iterations, it)
		}
	}

	m.StddevValues = make([]float64, len(order))
	m.Samples = make([][]float64, len(order))
	for i, src := range order {
		m.StddevValues[i] = src.stddev
		r := results[src.result]
		var sample []float64
		if src.index < len(r.AccuracyResults) {
			acc := r.AccuracyResults[src.index].Accuracies
			if len(acc) > iterations {
				acc = acc[:iterations]
			}
			sample = append(sample, acc...)
		}
		m.Samples[i] = sample
	}
	return m, nil
}

func common(results []*Result, field func(*Result) int) *int {
	v := field(results[0])
	for _, r := range results[1:] {
		if field(r) != v {
			return nil
		}
	}
	return &v
}

// Subtitle lists the parameters shared by all merged results.
func (m *Merged) Subtitle() string {
	var parts []string
	if m.PointsPerPlane != nil {
		parts = append(parts, fmt.Sprintf("Datapoints: %d", *m.PointsPerPlane*3))
	}
	if m.Iterations != nil {
		parts = append(parts, fmt.Sprintf("Iterations: %d", *m.Iterations))
	}
	return strings.Join(parts, ", ")
}

// BoxPositions spaces boxes proportionally to the gaps between sorted stddev
// values: the first box sits at 1 and the smallest gap is one unit wide.
func BoxPositions(stddevs []float64) []float64 {
	if len(stddevs) == 0 {
		return nil
	}
	steps := make([]float64, len(stddevs))
	steps[0] = 1
	if len(stddevs) > 1 {
		diffs := make([]float64, len(stddevs)-1)
		for i := range diffs {
			diffs[i] = stddevs[i+1] - stddevs[i]
		}
		min := floats.Min(diffs)
		if min > 0 {
			floats.Scale(1/min, diffs)
		}
		copy(steps[1:], diffs)
	}
	return floats.CumSum(make([]float64, len(steps)), steps)
}
