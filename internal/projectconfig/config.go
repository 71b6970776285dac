// Package projectconfig provides the ProjectConfig struct and loader for
// .reviewbench.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file searched for by Load.
const ConfigFileName = ".reviewbench.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultDataDir    = "data/"
	DefaultResultsDir = "results/"

	DefaultNormalization = "evaluator_metric_target"
)

// PathsConfig holds directory paths for evaluation data and results.
type PathsConfig struct {
	Data    string `yaml:"data,omitempty"`
	Results string `yaml:"results,omitempty"`
}

// AnalysisConfig holds analysis parameters.
type AnalysisConfig struct {
	Normalization string `yaml:"normalization,omitempty"`
}

// ReportConfig holds report generation settings.
type ReportConfig struct {
	HTML     *bool `yaml:"html,omitempty"`
	Compress *bool `yaml:"compress,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .reviewbench.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Analysis AnalysisConfig `yaml:"analysis,omitempty"`
	Report   ReportConfig   `yaml:"report,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Data:    DefaultDataDir,
			Results: DefaultResultsDir,
		},
		Analysis: AnalysisConfig{
			Normalization: DefaultNormalization,
		},
		Report: ReportConfig{
			HTML:     boolPtr(false),
			Compress: boolPtr(false),
		},
	}
}

// Load finds .reviewbench.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	// Merge file values onto defaults.
	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .reviewbench.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Data != "" {
		dst.Paths.Data = src.Paths.Data
	}
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}

	// Analysis
	if src.Analysis.Normalization != "" {
		dst.Analysis.Normalization = src.Analysis.Normalization
	}

	// Report
	if src.Report.HTML != nil {
		dst.Report.HTML = src.Report.HTML
	}
	if src.Report.Compress != nil {
		dst.Report.Compress = src.Report.Compress
	}
}

func boolPtr(b bool) *bool {
	return &b
}
