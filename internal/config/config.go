package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is where the tools look for a config file when -config is
// not given. A missing default file is not an error.
const DefaultConfigPath = "config/evaltools.json"

// ToolConfig holds settings shared by the analysis tools. Every field is
// optional; the Get* methods supply defaults for omitted values and command
// line flags override whatever the file contains.
type ToolConfig struct {
	// Cost calculation
	Threshold     *float64 `json:"threshold,omitempty"`
	Amplification *float64 `json:"amplification,omitempty"`

	// Plot output
	PlotWidthInches  *float64 `json:"plot_width_inches,omitempty"`
	PlotHeightInches *float64 `json:"plot_height_inches,omitempty"`
	OutputFormat     *string  `json:"output_format,omitempty"` // png, svg, pdf or html

	// Evaluation results
	ResultsDir *string `json:"results_dir,omitempty"`
}

// OutputFormats lists the accepted output_format values.
var OutputFormats = []string{"png", "svg", "pdf", "html"}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// EmptyConfig returns a ToolConfig with all fields unset.
func EmptyConfig() *ToolConfig {
	return &ToolConfig{}
}

// DefaultConfig returns a ToolConfig with every field set to its default.
func DefaultConfig() *ToolConfig {
	return &ToolConfig{
		Threshold:        ptrFloat64(1.0),
		Amplification:    ptrFloat64(1.0),
		PlotWidthInches:  ptrFloat64(10),
		PlotHeightInches: ptrFloat64(6),
		OutputFormat:     ptrString("png"),
		ResultsDir:       ptrString("temp/results"),
	}
}

// LoadConfig loads a ToolConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadConfig(path string) (*ToolConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Resolve loads path when given. Without a path it loads DefaultConfigPath
// if that file exists and otherwise returns an empty config.
func Resolve(path string) (*ToolConfig, error) {
	if path != "" {
		return LoadConfig(path)
	}
	if _, err := os.Stat(DefaultConfigPath); err != nil {
		return EmptyConfig(), nil
	}
	return LoadConfig(DefaultConfigPath)
}

// Validate checks that the configured values are usable.
func (c *ToolConfig) Validate() error {
	if c.PlotWidthInches != nil && *c.PlotWidthInches <= 0 {
		return fmt.Errorf("plot_width_inches must be positive, got %f", *c.PlotWidthInches)
	}
	if c.PlotHeightInches != nil && *c.PlotHeightInches <= 0 {
		return fmt.Errorf("plot_height_inches must be positive, got %f", *c.PlotHeightInches)
	}
	if c.OutputFormat != nil && !validFormat(*c.OutputFormat) {
		return fmt.Errorf("output_format must be one of %s, got %q", strings.Join(OutputFormats, ", "), *c.OutputFormat)
	}
	return nil
}

func validFormat(f string) bool {
	for _, v := range OutputFormats {
		if strings.EqualFold(f, v) {
			return true
		}
	}
	return false
}

// GetThreshold returns the threshold value or the default.
func (c *ToolConfig) GetThreshold() float64 {
	if c.Threshold == nil {
		return 1.0
	}
	return *c.Threshold
}

// GetAmplification returns the amplification value or the default.
func (c *ToolConfig) GetAmplification() float64 {
	if c.Amplification == nil {
		return 1.0
	}
	return *c.Amplification
}

// GetPlotWidthInches returns the plot width or the default.
func (c *ToolConfig) GetPlotWidthInches() float64 {
	if c.PlotWidthInches == nil {
		return 10
	}
	return *c.PlotWidthInches
}

// GetPlotHeightInches returns the plot height or the default.
func (c *ToolConfig) GetPlotHeightInches() float64 {
	if c.PlotHeightInches == nil {
		return 6
	}
	return *c.PlotHeightInches
}

// GetOutputFormat returns the lower-cased output format or the default.
func (c *ToolConfig) GetOutputFormat() string {
	if c.OutputFormat == nil || *c.OutputFormat == "" {
		return "png"
	}
	return strings.ToLower(*c.OutputFormat)
}

// GetResultsDir returns the evaluation results directory or the default.
func (c *ToolConfig) GetResultsDir() string {
	if c.ResultsDir == nil || *c.ResultsDir == "" {
		return "temp/results"
	}
	return *c.ResultsDir
}
