// Package config holds the profiling run configuration. A configuration
// is built once per run and passed by value into every component; there
// is no package-level mutable state.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir     = "test_csvs"
	DefaultReportFile  = "csv_profile_report.parquet"
	DefaultSampleSize  = 32 * 1024
	DefaultFileTimeout = 2 * time.Minute
)

// ProfilingConfig fixes all settings for one batch run.
type ProfilingConfig struct {
	// DataDir is the directory scanned recursively for .csv files.
	DataDir string `yaml:"data_dir"`

	// ReportFile is where the parquet report is written.
	ReportFile string `yaml:"report_file"`

	// SampleSize is the number of bytes read for encoding detection.
	SampleSize int `yaml:"sample_size_bytes"`

	// CsvstatEnabled controls the external csvstat validation step.
	CsvstatEnabled bool `yaml:"csvstat_enabled"`

	// Workers bounds concurrent per-file profiling.
	Workers int `yaml:"workers"`

	// FileTimeout bounds wall-clock time spent on a single file.
	FileTimeout time.Duration `yaml:"file_timeout"`
}

// Default returns the configuration used when nothing is supplied.
func Default() ProfilingConfig {
	return ProfilingConfig{
		DataDir:        DefaultDataDir,
		ReportFile:     DefaultReportFile,
		SampleSize:     DefaultSampleSize,
		CsvstatEnabled: true,
		Workers:        runtime.NumCPU(),
		FileTimeout:    DefaultFileTimeout,
	}
}

// Load reads a yaml config file over the defaults. Fields missing from
// the file keep their default values.
func Load(path string) (ProfilingConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c ProfilingConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.ReportFile == "" {
		return errors.New("report_file is required")
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample_size_bytes must be positive, got %d", c.SampleSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.FileTimeout <= 0 {
		return fmt.Errorf("file_timeout must be positive, got %s", c.FileTimeout)
	}
	return nil
}
