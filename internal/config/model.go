// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// The loader builds one flat store keyed by environment-variable name.  Each
// key is declared once in `settings`, in the order it is loaded, together
// with its default and an optional validator tag.  Consumers read values
// through the accessors below or through the derived, read-only views
// (`Server`, `Database`, `Log`) so they never depend on key spelling.
//
// Notes
// -----
//   - A nil default means the key is unset unless the environment says
//     otherwise.  A present-but-empty variable is stored as "".
//   - Numeric keys are validated as integers and stored as int.
//   - Config is immutable after Load.  Nothing in the process mutates it.
package config

import (
	"maps"
	"strconv"
	"time"
)

// Environment modes accepted by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Setting keys.  Each one is read from the same-named environment variable.
const (
	KeyEnv             = "APP_ENV"
	KeyPort            = "PORT"
	KeyLogLevel        = "LOG_LEVEL"
	KeyAPITimeout      = "API_TIMEOUT"
	KeyRateLimitWindow = "RATE_LIMIT_WINDOW"
	KeyRateLimitMax    = "RATE_LIMIT_MAX"
	KeyCORSOrigin      = "CORS_ORIGIN"
	KeyDatabaseURL     = "DATABASE_URL"
	KeyJWTSecret       = "JWT_SECRET"
	KeyCORSCredentials = "CORS_CREDENTIALS"
	KeyDBRetryAttempts = "DB_RETRY_ATTEMPTS"
	KeyDBPoolSize      = "DB_POOL_SIZE"
	KeyLogDir          = "LOG_DIR"
	KeyGeoIPDB         = "GEOIP_DB"
)

// setting declares one configuration key.  An int default marks the key as
// numeric; rule is a go-playground/validator tag evaluated by validator.go.
type setting struct {
	key  string
	def  any
	rule string
}

// numeric reports whether the declared default is an integer.
func (s setting) numeric() bool {
	_, ok := s.def.(int)
	return ok
}

// settings is evaluated top to bottom.  The first failing predicate aborts
// the whole load.
var settings = []setting{
	{key: KeyEnv, def: EnvDevelopment, rule: "oneof=development production test"},
	{key: KeyPort, def: 3000, rule: "gt=0,lte=65535"},
	{key: KeyLogLevel, def: "info", rule: "oneof=error warn info debug"},
	{key: KeyAPITimeout, def: 30000, rule: "gt=0"},
	{key: KeyRateLimitWindow, def: 900000, rule: "gt=0"}, // 15 minutes
	{key: KeyRateLimitMax, def: 100, rule: "gt=0"},
	{key: KeyCORSOrigin, def: "*"},
	{key: KeyDatabaseURL, def: nil},
	{key: KeyJWTSecret, def: nil},
	{key: KeyCORSCredentials, def: "true", rule: "oneof=true false"},
	{key: KeyDBRetryAttempts, def: 3, rule: "gte=0"},
	{key: KeyDBPoolSize, def: 10, rule: "gt=0"},
	{key: KeyLogDir, def: nil},
	{key: KeyGeoIPDB, def: nil},
}

// Keys returns every declared key in load order.
func Keys() []string {
	out := make([]string, len(settings))
	for i, s := range settings {
		out[i] = s.key
	}
	return out
}

//
// Root aggregate
//

// Config is the immutable result of Load.  Values are string, int, or nil.
type Config struct {
	values map[string]any
}

// Get returns the stored value for key, or fallback when the key is not
// declared.  A declared key whose value is nil returns nil, not fallback.
func (c *Config) Get(key string, fallback any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return fallback
}

// All returns a copy of the flat store.  Mutating it has no effect on c.
func (c *Config) All() map[string]any {
	return maps.Clone(c.values)
}

// String returns the value for key as a string.  Nil and non-string values
// yield "".
func (c *Config) String(key string) string {
	s, _ := c.values[key].(string)
	return s
}

// Int returns the value for key as an int.  Non-numeric values yield 0.
func (c *Config) Int(key string) int {
	n, _ := c.values[key].(int)
	return n
}

func (c *Config) IsDevelopment() bool { return c.Get(KeyEnv, nil) == EnvDevelopment }
func (c *Config) IsProduction() bool  { return c.Get(KeyEnv, nil) == EnvProduction }
func (c *Config) IsTest() bool        { return c.Get(KeyEnv, nil) == EnvTest }

// ValidateRequired fails with *MissingConfigError naming every key whose
// value is nil, empty, or undeclared.
func (c *Config) ValidateRequired(keys ...string) error {
	var missing []string
	for _, k := range keys {
		switch v := c.Get(k, nil).(type) {
		case nil:
			missing = append(missing, k)
		case string:
			if v == "" {
				missing = append(missing, k)
			}
		}
	}
	if len(missing) > 0 {
		return &MissingConfigError{Keys: missing}
	}
	return nil
}

//
// Derived views
//

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	Origin      string
	Credentials bool
}

// RateLimitConfig is carried for handlers and proxies that enforce limits.
// Nothing in this process enforces it.
type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

// ServerConfig bundles the listener, timeout, CORS, and rate-limit settings.
type ServerConfig struct {
	Port      int
	Timeout   time.Duration
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// Addr returns the listen address for http.Server.
func (s ServerConfig) Addr() string { return ":" + strconv.Itoa(s.Port) }

// DatabaseConfig describes a database connection.  URL is "" when unset.
type DatabaseConfig struct {
	URL           string
	Timeout       time.Duration
	RetryAttempts int
	PoolSize      int
}

// LogConfig feeds internal/logger.
type LogConfig struct {
	Level       string
	Dir         string
	Environment string
}

// Server derives the server view.
func (c *Config) Server() ServerConfig {
	return ServerConfig{
		Port:    c.Int(KeyPort),
		Timeout: millis(c.Int(KeyAPITimeout)),
		CORS: CORSConfig{
			Origin:      c.String(KeyCORSOrigin),
			Credentials: c.String(KeyCORSCredentials) == "true",
		},
		RateLimit: RateLimitConfig{
			Window: millis(c.Int(KeyRateLimitWindow)),
			Max:    c.Int(KeyRateLimitMax),
		},
	}
}

// Database derives the database view.
func (c *Config) Database() DatabaseConfig {
	return DatabaseConfig{
		URL:           c.String(KeyDatabaseURL),
		Timeout:       millis(c.Int(KeyAPITimeout)),
		RetryAttempts: c.Int(KeyDBRetryAttempts),
		PoolSize:      c.Int(KeyDBPoolSize),
	}
}

// Log derives the logger view.
func (c *Config) Log() LogConfig {
	return LogConfig{
		Level:       c.String(KeyLogLevel),
		Dir:         c.String(KeyLogDir),
		Environment: c.String(KeyEnv),
	}
}

func millis(n int) time.Duration { return time.Duration(n) * time.Millisecond }
