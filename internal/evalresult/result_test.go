package evalresult

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/banshee-data/evaltools/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleResult() *Result {
	return &Result{
		GitCommit:      "4f1c2e9",
		Algorithm:      "GreedyJoining",
		Iterations:     3,
		StddevValues:   []float64{0.1, 0.5, 1},
		PointsPerPlane: 20,
		Seed:           1660000000,
		AccuracyResults: []AccuracyResult{
			{Accuracies: []float64{1, 0.9, 0.8}, Time: 1500},
			{Accuracies: []float64{0.7, 0.6, 0.5}, Time: 3000},
		},
	}
}

func writeResult(t *testing.T, fsys *fsutil.MemoryFileSystem, path string, r *Result) {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, fsys.WriteFile(path, data, 0644))
}

func TestLoad(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	writeResult(t, fsys, "temp/results/joining.json", sampleResult())

	r, err := Load(fsys, "temp/results/joining.json")
	require.NoError(t, err)
	assert.Equal(t, sampleResult(), r)
}

func TestLoadRunnerOutput(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	raw := `{
  "GitCommit": "abc",
  "Algorithm": "GreedyMoving",
  "Iterations": 2,
  "StddevValues": [0.2, 0.4],
  "PointsPerPlane": 10,
  "Seed": 42,
  "AccuracyResults": [
    {"Accuracies": [0.95, 0.97], "Time": 800}
  ]
}`
	require.NoError(t, fsys.WriteFile("moving.json", []byte(raw), 0644))

	r, err := Load(fsys, "moving.json")
	require.NoError(t, err)
	assert.Nil(t, r.Cores)
	assert.Equal(t, []float64{0.2}, Covered(r))
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Result)
	}{
		{name: "missing algorithm", mutate: func(r *Result) { r.Algorithm = "" }},
		{name: "zero iterations", mutate: func(r *Result) { r.Iterations = 0 }},
		{name: "no stddev values", mutate: func(r *Result) { r.StddevValues = nil }},
		{name: "negative stddev", mutate: func(r *Result) { r.StddevValues[1] = -0.5 }},
		{name: "zero points", mutate: func(r *Result) { r.PointsPerPlane = 0 }},
		{name: "accuracy above one", mutate: func(r *Result) { r.AccuracyResults[0].Accuracies[0] = 1.5 }},
		{name: "too many accuracy results", mutate: func(r *Result) {
			r.StddevValues = r.StddevValues[:1]
		}},
		{name: "zero cores", mutate: func(r *Result) { r.Cores = intPtr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fsutil.NewMemoryFileSystem()
			r := sampleResult()
			tt.mutate(r)
			writeResult(t, fsys, "bad.json", r)

			_, err := Load(fsys, "bad.json")
			assert.ErrorIs(t, err, ErrInvalidResult)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	_, err := Load(fsys, "missing.json")
	assert.Error(t, err)

	require.NoError(t, fsys.WriteFile("broken.json", []byte("{"), 0644))
	_, err = Load(fsys, "broken.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidResult)
}

func TestLoadAll(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	writeResult(t, fsys, "a.json", sampleResult())
	other := sampleResult()
	other.Algorithm = "GreedyMoving"
	writeResult(t, fsys, "b.json", other)

	rs, err := LoadAll(fsys, "a.json", "b.json")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "GreedyMoving", rs[1].Algorithm)

	_, err = LoadAll(fsys, "a.json", "c.json")
	assert.Error(t, err)
}

func TestResolvePaths(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.json")
	got := ResolvePaths("temp/results", "a.json", abs)
	assert.Equal(t, []string{filepath.Join("temp/results", "a.json"), abs}, got)

	assert.Equal(t, []string{"a.json"}, ResolvePaths("", "./a.json"))
}

func TestLabel(t *testing.T) {
	r := sampleResult()
	assert.Equal(t, "GreedyJoining: Datapoints: 60, Iterations: 3", r.Label(true))

	r.Cores = intPtr(8)
	assert.Equal(t, "GreedyJoining: Datapoints: 60, Iterations: 3, CPU-Cores: 8", r.Label(true))
	assert.Equal(t, "GreedyJoining: Datapoints: 60, Iterations: 3", r.Label(false))
}
