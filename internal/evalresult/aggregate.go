package evalresult

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ExecutionTimes returns the average time per iteration in seconds for each
// stddev value that has recorded results.
func ExecutionTimes(r *Result) []float64 {
	times := make([]float64, len(r.AccuracyResults))
	for i, ar := range r.AccuracyResults {
		times[i] = float64(ar.Time) / float64(r.Iterations) / 1000
	}
	return times
}

// AverageAccuracies returns the mean accuracy for each stddev value that has
// recorded results. A stddev without accuracies yields NaN.
func AverageAccuracies(r *Result) []float64 {
	means := make([]float64, len(r.AccuracyResults))
	for i, ar := range r.AccuracyResults {
		if len(ar.Accuracies) == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = stat.Mean(ar.Accuracies, nil)
	}
	return means
}

// Covered returns the stddev values that have accuracy results, in order.
func Covered(r *Result) []float64 {
	n := len(r.AccuracyResults)
	if n > len(r.StddevValues) {
		n = len(r.StddevValues)
	}
	return r.StddevValues[:n]
}
