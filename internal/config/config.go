// Package config provides configuration management for the normalizer.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"procnorm/internal/transform"
)

// Configuration validation errors.
var (
	ErrEmptyDelimiter   = errors.New("field_delimiter and value_delimiter must not be empty")
	ErrSameDelimiters   = errors.New("field_delimiter and value_delimiter must differ")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("logging.format must be 'console' or 'json'")
)

// Default delimiters of the extra data string.
const (
	DefaultFieldDelimiter = "|"
	DefaultValueDelimiter = "="
)

var (
	integerPattern = regexp.MustCompile(`^[-+]?\d+$`)
	floatPattern   = regexp.MustCompile(`^[-+]?\d+\.\d+$`)
)

// Config represents the complete normalizer configuration.
type Config struct {
	Transform      string        `yaml:"transform"`
	Country        string        `yaml:"country"`
	ExtraData      string        `yaml:"extra_data"`
	FieldDelimiter string        `yaml:"field_delimiter"`
	ValueDelimiter string        `yaml:"value_delimiter"`
	Logging        LoggingConfig `yaml:"logging"`
	Summary        bool          `yaml:"summary"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		FieldDelimiter: DefaultFieldDelimiter,
		ValueDelimiter: DefaultValueDelimiter,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from YAML file. Keys absent from the file keep
// their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.FieldDelimiter == "" || c.ValueDelimiter == "" {
		return ErrEmptyDelimiter
	}

	if c.FieldDelimiter == c.ValueDelimiter {
		return fmt.Errorf("%w: both are %q", ErrSameDelimiters, c.FieldDelimiter)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// Overlay parses the extra data string with the configured delimiters.
func (c *Config) Overlay() (transform.Overlay, error) {
	return ParseOverlay(c.ExtraData, c.FieldDelimiter, c.ValueDelimiter)
}

// Options builds the adapter options shared by every record of the run.
func (c *Config) Options() (transform.Options, error) {
	overlay, err := c.Overlay()
	if err != nil {
		return transform.Options{}, err
	}

	return transform.Options{
		Country: strings.TrimSpace(c.Country),
		Overlay: overlay,
	}, nil
}

// ParseOverlay splits data into pairs on fieldDelim and each pair once on
// valueDelim. Values that look like integers become int64, values that look like
// decimals become float64; everything else stays a string. Empty pairs and empty
// keys are skipped, and a pair without valueDelim maps its key to "".
func ParseOverlay(data, fieldDelim, valueDelim string) (transform.Overlay, error) {
	if fieldDelim == "" || valueDelim == "" {
		return nil, ErrEmptyDelimiter
	}

	if fieldDelim == valueDelim {
		return nil, fmt.Errorf("%w: both are %q", ErrSameDelimiters, fieldDelim)
	}

	overlay := transform.Overlay{}

	if strings.TrimSpace(data) == "" {
		return overlay, nil
	}

	for _, pair := range strings.Split(data, fieldDelim) {
		if strings.TrimSpace(pair) == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, valueDelim)

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		overlay[key] = typedValue(strings.TrimSpace(value))
	}

	return overlay, nil
}

func typedValue(value string) any {
	switch {
	case integerPattern.MatchString(value):
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case floatPattern.MatchString(value):
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}

	return value
}
