// Package evalresult reads the JSON files written by evaluation runs and
// merges and aggregates their accuracy and timing series.
package evalresult

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/evaltools/internal/fsutil"
	"github.com/go-playground/validator/v10"
)

// Result is one evaluation run: for every stddev value the runner generated
// Iterations noisy data sets and recorded the partitioning accuracy.
type Result struct {
	GitCommit       string
	Algorithm       string    `validate:"required"`
	Iterations      int       `validate:"gt=0"`
	StddevValues    []float64 `validate:"required,min=1,dive,gt=0"`
	PointsPerPlane  int       `validate:"gt=0"`
	Seed            int64
	Cores           *int             `json:",omitempty" validate:"omitempty,gt=0"`
	AccuracyResults []AccuracyResult `validate:"dive"`
}

// AccuracyResult holds the accuracies for one stddev value and the total
// time in milliseconds spent on all of its iterations.
type AccuracyResult struct {
	Accuracies []float64 `validate:"dive,gte=0,lte=1"`
	Time       int64     `validate:"gte=0"`
}

// ErrInvalidResult wraps schema violations found while loading.
var ErrInvalidResult = errors.New("invalid evaluation result")

var validate = validator.New()

// Validate checks the result against its schema.
func (r *Result) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	if len(r.AccuracyResults) > len(r.StddevValues) {
		return fmt.Errorf("%w: %d accuracy results for %d stddev values",
			ErrInvalidResult, len(r.AccuracyResults), len(r.StddevValues))
	}
	return nil
}

// Load reads and validates one result file.
func Load(fsys fsutil.FileSystem, path string) (*Result, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result %s: %w", path, err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse result %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}

// LoadAll loads every path in order.
func LoadAll(fsys fsutil.FileSystem, paths ...string) ([]*Result, error) {
	results := make([]*Result, 0, len(paths))
	for _, p := range paths {
		r, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// ResolvePaths joins file names onto dir. Absolute names are kept as given.
func ResolvePaths(dir string, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if filepath.IsAbs(n) || dir == "" {
			out[i] = filepath.Clean(n)
			continue
		}
		out[i] = filepath.Join(dir, n)
	}
	return out
}

// Label describes the run for plot legends. Cores is only reported when
// withCores is set and the runner recorded it.
func (r *Result) Label(withCores bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Datapoints: %d, Iterations: %d", r.Algorithm, r.PointsPerPlane*3, r.Iterations)
	if withCores && r.Cores != nil {
		fmt.Fprintf(&b, ", CPU-Cores: %d", *r.Cores)
	}
	return b.String()
}
