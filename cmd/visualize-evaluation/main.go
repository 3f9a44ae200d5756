// Package main visualizes evaluation result files as box plots of the
// accuracy per stddev, or compares execution time and average accuracy
// across several runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/evaltools/internal/chart"
	"github.com/banshee-data/evaltools/internal/config"
	"github.com/banshee-data/evaltools/internal/evalresult"
	"github.com/banshee-data/evaltools/internal/fsutil"
	"github.com/banshee-data/evaltools/internal/security"
	"github.com/banshee-data/evaltools/internal/version"
)

// Plot types.
const (
	TypeBox      = "box"
	TypeTime     = "time"
	TypeAccuracy = "accuracy"
)

// Config holds the command line settings.
type Config struct {
	Dir         string
	Type        string
	Files       []string
	Output      string
	ConfigFile  string
	ShowVersion bool
}

type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(s string) error {
	*f = append(*f, s)
	return nil
}

func parseFlags(args []string) (Config, error) {
	var (
		cfg   Config
		extra fileList
	)
	fs := flag.NewFlagSet("visualize-evaluation", flag.ContinueOnError)
	fs.StringVar(&cfg.Dir, "d", "", "Directory of the result files (default from config, else temp/results)")
	fs.StringVar(&cfg.Type, "t", TypeBox, "What to plot: box, time or accuracy")
	fs.Var(&extra, "f", "Further result file, may be repeated")
	fs.StringVar(&cfg.Output, "o", "", "Output file; the extension picks png, svg, pdf or html")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a JSON tool configuration")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: visualize-evaluation [flags] FILE [FILE...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, fmt.Errorf("no result file given")
	}
	cfg.Files = append(fs.Args(), extra...)

	cfg.Type = strings.ToLower(cfg.Type)
	switch cfg.Type {
	case TypeBox, TypeTime, TypeAccuracy:
	default:
		return cfg, fmt.Errorf("unknown plot type %q, use box, time or accuracy", cfg.Type)
	}
	return cfg, nil
}

func (c Config) dir(tc *config.ToolConfig) string {
	if c.Dir != "" {
		return c.Dir
	}
	return tc.GetResultsDir()
}

// outputPath defaults to <first file>-<type>.<format> in the results
// directory.
func (c Config) outputPath(tc *config.ToolConfig) string {
	if c.Output != "" {
		return c.Output
	}
	first := evalresult.ResolvePaths(c.dir(tc), c.Files[0])[0]
	base := strings.TrimSuffix(first, filepath.Ext(first))
	return fmt.Sprintf("%s-%s.%s", base, c.Type, tc.GetOutputFormat())
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err != flag.ErrHelp {
			log.Printf("%v", err)
		}
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println(version.String("visualize-evaluation"))
		return
	}

	tc, err := config.Resolve(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	out, err := run(fsutil.OSFileSystem{}, cfg, tc)
	if err != nil {
		log.Fatalf("Failed to visualize results: %v", err)
	}
	fmt.Println(out)
}

// run loads the result files, builds the requested figure and saves it. It
// returns the path written.
func run(fsys fsutil.FileSystem, cfg Config, tc *config.ToolConfig) (string, error) {
	paths := evalresult.ResolvePaths(cfg.dir(tc), cfg.Files...)
	results, err := evalresult.LoadAll(fsys, paths...)
	if err != nil {
		return "", err
	}

	fig, err := figure(cfg.Type, results)
	if err != nil {
		return "", err
	}

	out := cfg.outputPath(tc)
	if err := security.ValidateOutputPath(out, cfg.dir(tc), tc.GetResultsDir()); err != nil {
		return "", err
	}
	size := chart.Size{Width: tc.GetPlotWidthInches(), Height: tc.GetPlotHeightInches()}
	if err := chart.Save(fsys, fig, out, size); err != nil {
		return "", err
	}
	return out, nil
}

func figure(kind string, results []*evalresult.Result) (chart.Figure, error) {
	switch kind {
	case TypeBox:
		merged, err := evalresult.Merge(results...)
		if err != nil {
			return nil, err
		}
		return chart.AccuracyBoxFigure(merged), nil
	case TypeTime:
		return chart.ExecutionTimeFigure(results), nil
	case TypeAccuracy:
		return chart.AverageAccuracyFigure(results), nil
	}
	return nil, fmt.Errorf("unknown plot type %q", kind)
}
