// Package config loads the optional pdfx configuration file.
//
// Every setting has a default, and command line flags override the file. The file is read from
// the path given with -config, or from the PDFX_CONFIG environment variable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the default configuration file.
const EnvConfigFile = "PDFX_CONFIG"

// Output formats.
const (
	FormatJSONL    = "jsonl"
	FormatMarkdown = "markdown"
	FormatXLSX     = "xlsx"
)

// Config holds the pdfx settings.
type Config struct {
	// Format is the output format of extract: jsonl, markdown or xlsx.
	Format string `yaml:"format"`

	// Workers is the number of documents parsed concurrently.
	Workers int `yaml:"workers"`

	// Timeout abandons pending documents, zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`

	// Securities is the securities store: a .jsonl file, or a .db sqlite database.
	// Empty means securities are not persisted.
	Securities string `yaml:"securities"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`

	// AlternationCheck reports alternations where more than one candidate matches.
	AlternationCheck bool `yaml:"alternation_check"`

	// Vendors restricts the extractors in use, empty means all of them.
	Vendors []string `yaml:"vendors"`

	Assist Assist `yaml:"assist"`
}

// Assist configures the suggestions made for unrecognized documents.
type Assist struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	// APIKeyEnv is the environment variable holding the api key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return &c, nil
}

// LoadDefault reads the file named by path, or by PDFX_CONFIG when path is empty.
// A missing default file is not an error.
func LoadDefault(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}
	c, err := Load(path)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

func applyDefaults(c *Config) {
	if c.Format == "" {
		c.Format = FormatJSONL
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Assist.Model == "" {
		c.Assist.Model = "gemini-2.5-flash"
	}
	if c.Assist.APIKeyEnv == "" {
		c.Assist.APIKeyEnv = "GEMINI_API_KEY"
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSONL, FormatMarkdown, FormatXLSX:
	default:
		return fmt.Errorf("unknown format %q, want %s, %s or %s", c.Format, FormatJSONL, FormatMarkdown, FormatXLSX)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}
