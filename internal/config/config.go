// Package config loads settings of the quantity command from TOML or
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/govalues/quantity"
)

// Format is the encoding of a configuration file.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Output styles of the command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// MaxPrecision is the largest number of fraction digits accepted for
// printing magnitudes.
const MaxPrecision = 17

var (
	// ErrInvalidConfig is returned when a configuration value is out of range
	// or an alias does not parse as units.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownFormat is returned when the file extension is not recognized.
	ErrUnknownFormat = errors.New("unknown configuration format")
)

// Config holds settings of the quantity command.
type Config struct {
	// Precision is the number of fraction digits in printed magnitudes.
	// A negative value prints the shortest exact representation.
	Precision int `toml:"precision" yaml:"precision"`

	// LogLevel is one of debug, info, warn, error or off.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Output is either text or json.
	Output string `toml:"format" yaml:"format"`

	// Aliases maps a user-defined name to a unit expression,
	// for example "speed" to "km/hr".
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Precision: -1,
		LogLevel:  "warn",
		Output:    OutputText,
		Aliases:   map[string]string{},
	}
}

// Load reads the file at path and overlays it on [Default].
// The format is detected from the extension.
func Load(path string) (Config, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat is like [Load] but uses the given format.
func LoadFormat(path string, format Format) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, fmt.Errorf("config file path is empty: %w", ErrInvalidConfig)
	}
	if format == FormatAuto {
		format = detectFormat(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Decode(content, format)
	if err != nil {
		return Config{}, fmt.Errorf("loading %v: %w", path, err)
	}
	return cfg, nil
}

// Decode parses content in the given format, overlays it on [Default]
// and validates the result.
func Decode(content []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("format %v: %w", format, ErrUnknownFormat)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// detectFormat returns the format that matches the file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks ranges of the settings and that every alias
// is a valid unit expression.
func (c Config) Validate() error {
	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %v is out of range [-1, %v]: %w", c.Precision, MaxPrecision, ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "off":
	default:
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("format %q: %w", c.Output, ErrInvalidConfig)
	}
	for name, units := range c.Aliases {
		if name == "" {
			return fmt.Errorf("alias with empty name: %w", ErrInvalidConfig)
		}
		if _, err := quantity.New(1, units); err != nil {
			return fmt.Errorf("alias %q: %w: %w", name, ErrInvalidConfig, err)
		}
	}
	return nil
}

// Expand returns the unit expression for an alias, or units unchanged
// if no alias has that name.
func (c Config) Expand(units string) string {
	if u, ok := c.Aliases[strings.TrimSpace(units)]; ok {
		return u
	}
	return units
}
