// Package config loads gasbalance settings from the environment.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/analysis"
)

// Prefix is prepended to every environment variable name.
const Prefix = "GASBALANCE"

//go:embed regions.yaml
var defaultRegions []byte

// Config is the complete command configuration.
type Config struct {
	// File is an explicit workbook path; empty means search.
	File        string `split_words:"true"`
	Password    string `split_words:"true"`
	BaseDir     string `split_words:"true"`
	RegionsFile string `split_words:"true"`
	Log         LogConfig
	Forecast    ForecastConfig

	// UsePrintArea limits sheets to their print areas.
	UsePrintArea bool `split_words:"true"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `default:"info"`
	Format string `default:"text"`
}

// ForecastConfig controls the forecast commands.
type ForecastConfig struct {
	Horizon      int `default:"12"`
	SeasonLength int `split_words:"true" default:"12"`
	Countries    int `default:"6"`
}

// Load reads the optional env files, then the environment. Variables that
// are already set win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Forecast.Horizon < 1 {
		return fmt.Errorf("forecast horizon must be positive, got %d", c.Forecast.Horizon)
	}
	if c.Forecast.SeasonLength < 1 {
		return fmt.Errorf("forecast season length must be positive, got %d", c.Forecast.SeasonLength)
	}
	if c.Forecast.Countries < 1 {
		return fmt.Errorf("forecast countries must be positive, got %d", c.Forecast.Countries)
	}
	return nil
}

// Options builds loader options from the configuration.
func (c *Config) Options(logger *slog.Logger) gasbalance.Options {
	opts := gasbalance.DefaultOptions()
	opts.Path = c.File
	opts.BaseDir = c.BaseDir
	opts.Password = c.Password
	opts.UsePrintArea = c.UsePrintArea
	opts.Logger = logger
	return opts
}

// ForecastOptions converts the forecast settings.
func (c *Config) ForecastOptions() analysis.ForecastConfig {
	return analysis.ForecastConfig{
		Horizon:      c.Forecast.Horizon,
		SeasonLength: c.Forecast.SeasonLength,
		Countries:    c.Forecast.Countries,
	}
}

// Regions returns the trading regions from RegionsFile, or the built-in
// set when no file is configured.
func (c *Config) Regions() ([]analysis.Region, error) {
	if c.RegionsFile == "" {
		return ParseRegions(defaultRegions)
	}
	data, err := os.ReadFile(c.RegionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read regions: %w", err)
	}
	return ParseRegions(data)
}

type regionsFile struct {
	Regions []analysis.Region `yaml:"regions"`
}

// ParseRegions decodes a YAML region list.
func ParseRegions(data []byte) ([]analysis.Region, error) {
	var f regionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse regions: %w", err)
	}
	for i, r := range f.Regions {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("region %d has no name", i+1)
		}
	}
	return f.Regions, nil
}
