// Package config loads formdoc tool configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// StoreConfig configures the record store.
type StoreConfig struct {
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"` // wait for the file lock, 0 waits forever
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// OutputConfig configures how documents are printed.
type OutputConfig struct {
	Indent string `yaml:"indent"`
	Color  string `yaml:"color"` // "auto", "always" or "never"
}

const (
	DefaultStorePath    = "formdoc.db"
	DefaultStoreTimeout = 5 * time.Second
	DefaultIndent       = "  "
)

// Load reads configuration from a YAML file. An empty path yields the
// defaults. FORMDOC_* environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FORMDOC_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("FORMDOC_STORE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FORMDOC_STORE_TIMEOUT: %w", err)
		}
		cfg.Store.Timeout = d
	}
	if v := os.Getenv("FORMDOC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FORMDOC_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("FORMDOC_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath
	}
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = DefaultStoreTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Output.Indent == "" {
		cfg.Output.Indent = DefaultIndent
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
}

func validate(cfg *Config) error {
	var errs []string
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q is not json or console", cfg.Logging.Format))
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Sprintf("output.color %q is not auto, always or never", cfg.Output.Color))
	}
	if strings.Trim(cfg.Output.Indent, " \t") != "" {
		errs = append(errs, "output.indent must consist of spaces and tabs")
	}
	if cfg.Store.Timeout < 0 {
		errs = append(errs, "store.timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
