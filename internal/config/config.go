// Package config loads the fancyrun CLI's default settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the fancyrun configuration file.
type Config struct {
	Run RunConfig `yaml:"run"`
}

// RunConfig holds the defaults applied to every `fancyrun run` invocation
// unless overridden by flags.
type RunConfig struct {
	Retries             int     `yaml:"retries"`                // re-runs after a failure
	RetryInitialSleepMs int     `yaml:"retry_initial_sleep_ms"` // delay before the first retry
	RetryBackoff        float64 `yaml:"retry_backoff"`          // delay multiplier between retries
	MaxOutputSize       int     `yaml:"max_output_size"`        // retained output cap in characters (0 = library default)
	Encoding            string  `yaml:"encoding"`               // output text encoding ("" = UTF-8)
	EncodingErrors      string  `yaml:"encoding_errors"`        // replace, ignore, or strict
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			Retries:             0,
			RetryInitialSleepMs: 10000,
			RetryBackoff:        2.0,
			MaxOutputSize:       0,
			Encoding:            "",
			EncodingErrors:      "replace",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fancyrun", "config.yaml")
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFromFile(DefaultPath())
}

// LoadFromFile loads configuration from the given file. A missing file
// yields the defaults. Environment overrides are applied after the file.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || path == "" {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies FANCYRUN_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("FANCYRUN_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Run.Retries = n
		}
	}
	if v := os.Getenv("FANCYRUN_RETRY_INITIAL_SLEEP_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Run.RetryInitialSleepMs = n
		}
	}
	if v := os.Getenv("FANCYRUN_RETRY_BACKOFF"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			c.Run.RetryBackoff = f
		}
	}
	if v := os.Getenv("FANCYRUN_MAX_OUTPUT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Run.MaxOutputSize = n
		}
	}
	if v := os.Getenv("FANCYRUN_ENCODING"); v != "" {
		c.Run.Encoding = v
	}
	if v := os.Getenv("FANCYRUN_ENCODING_ERRORS"); v != "" {
		if isValidEncodingErrors(v) {
			c.Run.EncodingErrors = v
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Run.Retries < 0 {
		return fmt.Errorf("run.retries must be >= 0 (got: %d)", c.Run.Retries)
	}
	if c.Run.RetryInitialSleepMs < 0 {
		return fmt.Errorf("run.retry_initial_sleep_ms must be >= 0 (got: %d)", c.Run.RetryInitialSleepMs)
	}
	if c.Run.RetryBackoff < 0 {
		return fmt.Errorf("run.retry_backoff must be >= 0 (got: %g)", c.Run.RetryBackoff)
	}
	if c.Run.MaxOutputSize < 0 {
		return fmt.Errorf("run.max_output_size must be >= 0 (got: %d)", c.Run.MaxOutputSize)
	}
	if !isValidEncodingErrors(c.Run.EncodingErrors) {
		return fmt.Errorf("run.encoding_errors must be replace, ignore, or strict (got: %s)", c.Run.EncodingErrors)
	}
	return nil
}

func isValidEncodingErrors(policy string) bool {
	switch policy {
	case "", "replace", "ignore", "strict":
		return true
	default:
		return false
	}
}
