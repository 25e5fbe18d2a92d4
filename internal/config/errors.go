// Package config holds the configuration surface shared by the core
// entry points: the typed validation error, YAML scene files, and the
// built-in landscape presets.
package config

import "fmt"

// ConfigError reports invalid configuration passed to a core entry
// point. Entry points validate before doing any work, so a ConfigError
// means no partial result was produced.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Errorf builds a ConfigError for the given field.
func Errorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
