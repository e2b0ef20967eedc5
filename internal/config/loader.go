// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` from the process environment:

  1. The entry point may merge an optional `.env` file into the environment
     (godotenv, never overriding variables that are already set).
  2. Koanf reads the environment through its env provider, keeping only the
     keys declared in model.go.
  3. Each declared key falls back to its default, numeric keys are coerced,
     and the per-key predicate runs.  The first failure aborts the load and
     nothing partial is returned.

`FromMap()` runs the same pipeline over an explicit map (confmap provider)
so tests and tools can build a Config without touching the environment.

Instrumentation
---------------
  • DEBUG span  – one per load with the number of overridden keys.
  • ERROR span  – predicate failure with the offending key.
  • Logs use the global sugared logger (`zap.S()`), which is a no-op until
    cmd/web installs the real logger, matching the bootstrap order.

Notes
-----
  • There is no reload.  Callers load once and inject the result.
*/
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads every declared key from the environment, applies defaults,
// coerces numeric values, and validates.  It returns *ConfigError on the
// first value that fails its predicate.
func Load() (*Config, error) {
	declared := make(map[string]struct{}, len(settings))
	for _, s := range settings {
		declared[s.key] = struct{}{}
	}

	k := koanf.New(".")
	// Returning "" from the callback drops undeclared variables.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		if _, ok := declared[s]; ok {
			return s
		}
		return ""
	}), nil); err != nil {
		zap.S().Errorw("config env read failed", "err", err)
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return build(k)
}

// FromMap builds a Config from explicit string values instead of the
// environment.  Keys absent from vals take their defaults.
func FromMap(vals map[string]string) (*Config, error) {
	mp := make(map[string]any, len(vals))
	for key, v := range vals {
		mp[key] = v
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(mp, "."), nil); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return build(k)
}

// build resolves every declared setting against k.
func build(k *koanf.Koanf) (*Config, error) {
	values := make(map[string]any, len(settings))
	overridden := 0

	for _, s := range settings {
		var v any = s.def
		if k.Exists(s.key) {
			v = k.String(s.key)
			overridden++
		}

		if s.numeric() {
			v = coerceNumber(v)
		}

		if !satisfies(s, v) {
			zap.S().Errorw("config validation failed", "key", s.key)
			return nil, &ConfigError{Key: s.key, Value: v}
		}

		values[s.key] = store(v)
	}

	zap.S().Debugw("config loaded", "keys", len(values), "overridden", overridden)
	return &Config{values: values}, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// coerceNumber turns a numeric default or an environment string into a
// float64.  Strings that are not numbers become NaN so the predicate fails.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// store converts validated integral floats back to int.
func store(v any) any {
	if f, ok := v.(float64); ok && isInteger(f) {
		return int(f)
	}
	return v
}

func isInteger(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}
