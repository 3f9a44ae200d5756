package evalresult

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionTimes(t *testing.T) {
	got := ExecutionTimes(sampleResult())
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0], 1e-12)
	assert.InDelta(t, 1.0, got[1], 1e-12)
}

func TestAverageAccuracies(t *testing.T) {
	r := sampleResult()
	r.AccuracyResults = append(r.AccuracyResults, AccuracyResult{})

	got := AverageAccuracies(r)
	require.Len(t, got, 3)
	assert.InDelta(t, 0.9, got[0], 1e-12)
	assert.InDelta(t, 0.6, got[1], 1e-12)
	assert.True(t, math.IsNaN(got[2]))
}

func TestCovered(t *testing.T) {
	assert.Equal(t, []float64{0.1, 0.5}, Covered(sampleResult()))
}
