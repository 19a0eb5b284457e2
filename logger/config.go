package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Format values recognized by Config. Anything other than FormatConsole
// means machine-readable JSON.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config contains logging configuration. It is read once at construction
// and never mutated afterwards.
type Config struct {
	Name      string `yaml:"name" mapstructure:"name"`
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	DebugMode bool   `yaml:"debug_mode" mapstructure:"debug_mode"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

// Validate validates logging configuration. New never calls this: it
// coerces bad levels instead of failing. Config loaders that want
// strictness call it explicitly.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("logging.name is required")
	}
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Level) {
		return fmt.Errorf("logging.level must be one of %v (got: %s)", validLevels, c.Level)
	}
	validFormats := []string{FormatJSON, FormatConsole}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("logging.format must be one of %v (got: %s)", validFormats, c.Format)
	}
	return nil
}

// parseLevel maps a configured level string onto a zerolog level.
// Anything outside debug/info/warn/error silently coerces to info.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
