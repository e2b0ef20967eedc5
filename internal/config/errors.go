package config

import (
	"fmt"
	"strings"
)

// ConfigError reports a value that failed its predicate during Load.  Value
// holds what was checked, after numeric coercion (NaN for unparseable
// numbers).
type ConfigError struct {
	Key   string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration value for %s: %v", e.Key, e.Value)
}

// MissingConfigError lists every required key that was unset or empty.
type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}
