// Package main plots one column of a benchmark table against another.
// The table is either a CSV file or raw `go test -bench` output.
//
//	visualize-benchmark -p "cores: 4" -o runtime.svg bench.csv points ns/op
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/evaltools/internal/benchtable"
	"github.com/banshee-data/evaltools/internal/chart"
	"github.com/banshee-data/evaltools/internal/config"
	"github.com/banshee-data/evaltools/internal/fsutil"
	"github.com/banshee-data/evaltools/internal/security"
	"github.com/banshee-data/evaltools/internal/version"
)

const (
	formatCSV     = "csv"
	formatGoBench = "go-bench"
)

// Config holds the command line settings.
type Config struct {
	File        string
	X, Y        string
	Params      benchtable.Params
	Output      string
	InputFormat string
	ConfigFile  string
	ShowVersion bool
}

func parseFlags(args []string) (Config, error) {
	var (
		cfg    Config
		params benchtable.ParamFlag
	)
	fs := flag.NewFlagSet("visualize-benchmark", flag.ContinueOnError)
	fs.Var(&params, "p", `Column filter "key: value", may be repeated`)
	fs.Var(&params, "parameter", "Same as -p")
	fs.StringVar(&cfg.Output, "o", "", "Output file; the extension picks png, svg, pdf or html")
	fs.StringVar(&cfg.InputFormat, "format", "", "Input format: csv or go-bench (default from the file extension)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a JSON tool configuration")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: visualize-benchmark [flags] FILE X Y")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Params = params.Params
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return cfg, fmt.Errorf("expected FILE X Y, got %d arguments", fs.NArg())
	}
	cfg.File, cfg.X, cfg.Y = fs.Arg(0), fs.Arg(1), fs.Arg(2)

	if cfg.InputFormat == "" {
		cfg.InputFormat = inputFormat(cfg.File)
	}
	if cfg.InputFormat != formatCSV && cfg.InputFormat != formatGoBench {
		return cfg, fmt.Errorf("unknown input format %q", cfg.InputFormat)
	}
	return cfg, nil
}

func inputFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".bench":
		return formatGoBench
	}
	return formatCSV
}

// outputPath defaults to the input file name with the configured plot
// extension.
func (c Config) outputPath(tc *config.ToolConfig) string {
	if c.Output != "" {
		return c.Output
	}
	return strings.TrimSuffix(c.File, filepath.Ext(c.File)) + "." + tc.GetOutputFormat()
}

// outputDirs lists the directories besides the working and temp directories
// that outputs may go to. A default output sits next to its input.
func (c Config) outputDirs(tc *config.ToolConfig) []string {
	dirs := []string{tc.GetResultsDir()}
	if c.Output == "" {
		dirs = append(dirs, filepath.Dir(c.File))
	}
	return dirs
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
		fmt.Println(version.String("visualize-benchmark"))
		return
	}

	tc, err := config.Resolve(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	out, err := run(context.Background(), fsutil.OSFileSystem{}, cfg, tc)
	if err != nil {
		log.Fatalf("Failed to visualize %s: %v", cfg.File, err)
	}
	fmt.Println(out)
}

// run reads the table, selects the series and saves the plot. It returns the
// path written.
func run(ctx context.Context, fsys fsutil.FileSystem, cfg Config, tc *config.ToolConfig) (string, error) {
	table, err := readTable(fsys, cfg.File, cfg.InputFormat)
	if err != nil {
		return "", err
	}

	series, err := benchtable.Select(ctx, table, cfg.X, cfg.Y, cfg.Params)
	if err != nil {
		return "", err
	}

	out := cfg.outputPath(tc)
	if err := security.ValidateOutputPath(out, cfg.outputDirs(tc)...); err != nil {
		return "", err
	}
	size := chart.Size{Width: tc.GetPlotWidthInches(), Height: tc.GetPlotHeightInches()}
	if err := chart.Save(fsys, chart.SeriesFigure(series), out, size); err != nil {
		return "", err
	}
	return out, nil
}

func readTable(fsys fsutil.FileSystem, path, format string) (*benchtable.Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == formatGoBench {
		return benchtable.ReadGoBench(f, path)
	}
	return benchtable.ReadCSV(f)
}
