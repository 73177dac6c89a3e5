// SPDX-License-Identifier: MIT

// Package config loads the pwbench run configuration from YAML, applies
// PWBENCH_* environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pwbench/pipeline"
	"github.com/katalvlaran/pwbench/sorting"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Sort    SortConfig    `yaml:"sort"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Report  ReportConfig  `yaml:"report"`
}

// InputConfig locates the raw password list.
type InputConfig struct {
	Passwords string `yaml:"passwords" validate:"required"`
}

// OutputConfig names the directory and files each stage writes.
type OutputConfig struct {
	Dir        string `yaml:"dir" validate:"required"`
	Classified string `yaml:"classified" validate:"required"`
	Formatted  string `yaml:"formatted" validate:"required"`
	Strong     string `yaml:"strong" validate:"required"`
}

// SortConfig selects the benchmark runs. Aliases are accepted.
type SortConfig struct {
	Algorithms []string `yaml:"algorithms" validate:"required,min=1,dive,algorithm"`
	Criteria   []string `yaml:"criteria" validate:"required,min=1,dive,criterion"`
	Scenarios  []string `yaml:"scenarios" validate:"required,min=1,dive,scenario"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// MetricsConfig configures the Prometheus textfile. An empty File disables it.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// ReportConfig configures the console report.
type ReportConfig struct {
	Estimates bool `yaml:"estimates"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{
		Input: InputConfig{Passwords: pipeline.InputFile},
		Output: OutputConfig{
			Dir:        ".",
			Classified: pipeline.ClassifiedFile,
			Formatted:  pipeline.FormattedFile,
			Strong:     pipeline.StrongFile,
		},
		Logging: LoggingConfig{Level: "info"},
	}
	for _, a := range sorting.Algorithms() {
		cfg.Sort.Algorithms = append(cfg.Sort.Algorithms, string(a))
	}
	for _, c := range sorting.Criteria() {
		cfg.Sort.Criteria = append(cfg.Sort.Criteria, string(c))
	}
	for _, s := range pipeline.Scenarios() {
		cfg.Sort.Scenarios = append(cfg.Sort.Scenarios, string(s))
	}

	return cfg
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// applyEnvOverrides lets PWBENCH_* variables replace file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PWBENCH_INPUT"); v != "" {
		c.Input.Passwords = v
	}
	if v := os.Getenv("PWBENCH_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("PWBENCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("PWBENCH_METRICS_FILE"); v != "" {
		c.Metrics.File = v
	}
	if v := os.Getenv("PWBENCH_ALGORITHMS"); v != "" {
		c.Sort.Algorithms = splitList(v)
	}
	if v := os.Getenv("PWBENCH_CRITERIA"); v != "" {
		c.Sort.Criteria = splitList(v)
	}
	if v := os.Getenv("PWBENCH_SCENARIOS"); v != "" {
		c.Sort.Scenarios = splitList(v)
	}
	if v, err := strconv.ParseBool(os.Getenv("PWBENCH_ESTIMATES")); err == nil {
		c.Report.Estimates = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
