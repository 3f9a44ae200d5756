// Package main provides an interactive calculator for the plane-fit cost of
// a set of 3D points. Coordinates are entered comma separated, for example
// x1,y1,z1,x2,y2,z2,x3,y3,z3. Type "exit" to leave.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/banshee-data/evaltools/internal/config"
	"github.com/banshee-data/evaltools/internal/monitoring"
	"github.com/banshee-data/evaltools/internal/planefit"
	"github.com/banshee-data/evaltools/internal/version"
	"gonum.org/v1/gonum/mat"
)

const prompt = `Input the data points (separated by comma) for which the costs should be calculated or type "exit" to exit the utility: `

// Config holds the command line settings.
type Config struct {
	ConfigFile    string
	Threshold     float64
	Amplification float64
	ShowVersion   bool

	set map[string]bool
}

func parseFlags(args []string) (Config, error) {
	cfg := Config{set: map[string]bool{}}

	fs := flag.NewFlagSet("cost-calculator", flag.ContinueOnError)
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a JSON tool configuration")
	fs.Float64Var(&cfg.Threshold, "threshold", 1, "The threshold for the cost calculation")
	fs.Float64Var(&cfg.Threshold, "t", 1, "Shorthand for -threshold")
	fs.Float64Var(&cfg.Amplification, "amplification", 1, "The amplification for the cost calculation")
	fs.Float64Var(&cfg.Amplification, "a", 1, "Shorthand for -amplification")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t", "threshold":
			cfg.set["threshold"] = true
		case "a", "amplification":
			cfg.set["amplification"] = true
		}
	})
	return cfg, nil
}

// calculator merges the config file with the flags; flags win.
func (c Config) calculator(tc *config.ToolConfig) planefit.Calculator {
	calc := planefit.Calculator{
		Threshold:     tc.GetThreshold(),
		Amplification: tc.GetAmplification(),
	}
	if c.set["threshold"] {
		calc.Threshold = c.Threshold
	}
	if c.set["amplification"] {
		calc.Amplification = c.Amplification
	}
	return calc
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println(version.String("cost-calculator"))
		return
	}

	tc, err := config.Resolve(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	calc := cfg.calculator(tc)
	monitoring.Logf("threshold=%g amplification=%g", calc.Threshold, calc.Amplification)

	if err := run(os.Stdin, os.Stdout, calc); err != nil {
		log.Fatalf("Reading input failed: %v", err)
	}
}

// maxLineBytes bounds a single input line. Longer lines are rejected and
// the user is asked again.
var maxLineBytes = 16 << 20

// run is the read-eval-print loop. Input errors are reported and the user is
// asked again; only a failing reader ends the loop with an error.
func run(in io.Reader, out io.Writer, calc planefit.Calculator) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, prompt)
		raw, tooLong, err := readLine(reader)
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		} else if err != nil {
			return err
		}
		if tooLong {
			fmt.Fprintf(out, "The input is longer than %d bytes and could not be parsed into floats, make sure the input has the correct format!\n", maxLineBytes)
			continue
		}

		line := strings.TrimSpace(raw)
		if strings.EqualFold(line, "exit") {
			return nil
		}

		res, err := evaluate(line, calc)
		switch {
		case errors.Is(err, planefit.ErrParse):
			fmt.Fprintln(out, "The input data points could not be parsed into floats, make sure the input has the correct format!")
			continue
		case errors.Is(err, planefit.ErrShape):
			fmt.Fprintln(out, "You did not input the points correctly, each point must have three numbers representing X, Y and Z coordinate")
			continue
		case err != nil:
			fmt.Fprintf(out, "The costs could not be calculated: %v\n", err)
			continue
		}

		fmt.Fprintln(out, "Input points as matrix:")
		fmt.Fprintf(out, "%v\n", mat.Formatted(res.Points, mat.Squeeze()))
		fmt.Fprintln(out, "Costs:", res.Cost)
	}
}

// readLine reads up to and including the next newline. A line over
// maxLineBytes is consumed in full but returned empty with tooLong set. A
// final line without newline is returned with a nil error.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		switch {
		case rerr == bufio.ErrBufferFull:
			continue
		case rerr == io.EOF && (len(buf) > 0 || tooLong):
			return string(buf), tooLong, nil
		default:
			return string(buf), tooLong, rerr
		}
	}
}

func evaluate(line string, calc planefit.Calculator) (planefit.CostResult, error) {
	ps, err := planefit.ParsePointSet(line)
	if err != nil {
		return planefit.CostResult{}, err
	}
	return calc.Cost(ps)
}
