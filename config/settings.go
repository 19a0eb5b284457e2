package config

import (
	"fmt"

	"github.com/nbs-nodejs/nucleo-logger-console/logger"
)

// Settings is the root configuration of an application using this module.
// Projects extend it by embedding it in their own config structs.
type Settings struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values. A development environment always
// turns on debug, even over an explicit debug: false — the flag cannot
// distinguish unset from false, and development without stack traces
// defeats the point of the mode. Set environment to staging or
// production to run with debug off. Debug turns on stack-trace capture
// in the logger.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Environment == "development" {
		s.Debug = true
	}
	if s.Logging.Name == "" {
		s.Logging.Name = s.Name
	}
	if s.Debug {
		s.Logging.DebugMode = true
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if s.Environment == v {
			return s.Logging.Validate()
		}
	}
	return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, s.Environment)
}

// NewLogger constructs a logger from the loaded logging settings.
func (s *Settings) NewLogger() *logger.Logger {
	return logger.New(s.Logging)
}
