package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/banshee-data/evaltools/internal/chart"
	"github.com/banshee-data/evaltools/internal/config"
	"github.com/banshee-data/evaltools/internal/evalresult"
	"github.com/banshee-data/evaltools/internal/fsutil"
	"github.com/banshee-data/evaltools/internal/security"
	"github.com/banshee-data/evaltools/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func writeResult(t *testing.T, fsys *fsutil.MemoryFileSystem, path string, r evalresult.Result) {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, fsys.WriteFile(path, data, 0644))
}

func fixture(t *testing.T) *fsutil.MemoryFileSystem {
	t.Helper()
	fsys := fsutil.NewMemoryFileSystem()
	writeResult(t, fsys, "temp/results/joining.json", evalresult.Result{
		Algorithm:      "Joining",
		Iterations:     2,
		StddevValues:   []float64{0.1, 0.3},
		PointsPerPlane: 20,
		Cores:          intPtr(4),
		AccuracyResults: []evalresult.AccuracyResult{
			{Accuracies: []float64{1, 0.9}, Time: 400},
			{Accuracies: []float64{0.8, 0.7}, Time: 600},
		},
	})
	writeResult(t, fsys, "temp/results/joining-more.json", evalresult.Result{
		Algorithm:      "Joining",
		Iterations:     2,
		StddevValues:   []float64{0.2},
		PointsPerPlane: 20,
		AccuracyResults: []evalresult.AccuracyResult{
			{Accuracies: []float64{0.85, 0.95}, Time: 500},
		},
	})
	writeResult(t, fsys, "other/moving.json", evalresult.Result{
		Algorithm:      "Moving",
		Iterations:     3,
		StddevValues:   []float64{0.1},
		PointsPerPlane: 10,
		AccuracyResults: []evalresult.AccuracyResult{
			{Accuracies: []float64{0.5, 0.6, 0.7}, Time: 900},
		},
	})
	return fsys
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-t", "TIME", "-f", "b.json", "-f", "c.json", "a.json"})
	require.NoError(t, err)
	want := Config{Type: TypeTime, Files: []string{"a.json", "b.json", "c.json"}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("parseFlags() mismatch (-want +got):\n%s", diff)
	}

	cfg, err = parseFlags([]string{"a.json"})
	require.NoError(t, err)
	assert.Equal(t, TypeBox, cfg.Type)

	_, err = parseFlags([]string{"-t", "violin", "a.json"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-t", "box"})
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	cfg := Config{Type: TypeBox, Files: []string{"joining.json"}}
	assert.Equal(t, "temp/results/joining-box.png", cfg.outputPath(config.EmptyConfig()))

	cfg.Dir = "out"
	assert.Equal(t, "out/joining-box.png", cfg.outputPath(config.EmptyConfig()))

	cfg.Output = "box.html"
	assert.Equal(t, "box.html", cfg.outputPath(config.EmptyConfig()))
}

func TestRunBox(t *testing.T) {
	fsys := fixture(t)
	cfg := Config{Type: TypeBox, Files: []string{"joining.json", "joining-more.json"}, Output: "box.svg"}

	out, err := run(fsys, cfg, config.EmptyConfig())
	require.NoError(t, err)
	assert.Equal(t, "box.svg", out)
	assert.True(t, fsys.Exists("box.svg"))
}

func TestRunBoxRejectsMixedAlgorithms(t *testing.T) {
	fsys := fixture(t)
	cfg := Config{Type: TypeBox, Files: []string{"temp/results/joining.json", "other/moving.json"}, Output: "box.png"}

	_, err := run(fsys, cfg, config.EmptyConfig())
	assert.ErrorIs(t, err, evalresult.ErrAlgorithmMismatch)
	assert.False(t, fsys.Exists("box.png"))
}

func TestRunComparisons(t *testing.T) {
	for _, kind := range []string{TypeTime, TypeAccuracy} {
		t.Run(kind, func(t *testing.T) {
			fsys := fixture(t)
			cfg := Config{Dir: ".", Type: kind, Files: []string{"temp/results/joining.json", "other/moving.json"}}

			out, err := run(fsys, cfg, config.EmptyConfig())
			require.NoError(t, err)
			assert.Equal(t, "temp/results/joining-"+kind+".png", out)
			assert.True(t, fsys.Exists(out))
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := run(fsutil.NewMemoryFileSystem(), Config{Type: TypeTime, Files: []string{"none.json"}}, config.EmptyConfig())
	assert.Error(t, err)
}

func TestFigure(t *testing.T) {
	_, err := figure("pie", nil)
	assert.Error(t, err)

	fig, err := figure(TypeAccuracy, nil)
	require.NoError(t, err)
	assert.IsType(t, &chart.LineFigure{}, fig)
}

func TestRunOnDisk(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteJSON(t, dir, "run.json", evalresult.Result{
		Algorithm:      "Joining",
		Iterations:     1,
		StddevValues:   []float64{0.1, 0.2},
		PointsPerPlane: 5,
		AccuracyResults: []evalresult.AccuracyResult{
			{Accuracies: []float64{0.9}, Time: 10},
			{Accuracies: []float64{0.8}, Time: 12},
		},
	})

	cfg, err := parseFlags([]string{"-d", dir, "-t", "accuracy", "run.json"})
	testutil.AssertNoError(t, err)
	out, err := run(fsutil.OSFileSystem{}, cfg, config.EmptyConfig())
	testutil.AssertNoError(t, err)

	assert.Equal(t, filepath.Join(dir, "run-accuracy.png"), out)
	assert.True(t, fsutil.OSFileSystem{}.Exists(out))
}

func TestRunWritesIntoResultsDirOutsideWorkspace(t *testing.T) {
	dir := t.TempDir()
	// Move the temp directory elsewhere so only -d makes dir writable.
	t.Setenv("TMPDIR", t.TempDir())
	require.Error(t, security.ValidateOutputPath(filepath.Join(dir, "run-time.png")))

	testutil.WriteJSON(t, dir, "run.json", evalresult.Result{
		Algorithm:      "Joining",
		Iterations:     2,
		StddevValues:   []float64{0.1},
		PointsPerPlane: 5,
		AccuracyResults: []evalresult.AccuracyResult{
			{Accuracies: []float64{0.9, 0.8}, Time: 10},
		},
	})

	cfg, err := parseFlags([]string{"-d", dir, "-t", "time", "run.json"})
	require.NoError(t, err)
	out, err := run(fsutil.OSFileSystem{}, cfg, config.EmptyConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run-time.png"), out)
	assert.True(t, fsutil.OSFileSystem{}.Exists(out))
}
