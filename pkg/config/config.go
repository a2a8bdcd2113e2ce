// Package config loads runtime settings from an optional .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvMap        = "HEXCRAWL_MAP"
	EnvMoveTokens = "HEXCRAWL_MOVE_TOKENS"
	EnvLocale     = "HEXCRAWL_LOCALE"
	EnvLocaleDir  = "HEXCRAWL_LOCALE_DIR"
	EnvTracing    = "HEXCRAWL_TRACING"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFormat  = "LOG_FORMAT"
	EnvLogFile    = "LOG_FILE"
)

// Config holds the settings the host needs to start a session
type Config struct {
	// MapPath is a JSON map document. Empty means the embedded sample map.
	MapPath string

	// MoveTokens is the starting movement purse
	MoveTokens int

	Locale    string
	LocaleDir string

	Tracing bool

	LogLevel  string
	LogFormat string
	// LogFile receives log output; empty means stderr
	LogFile string
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		MoveTokens: 12,
		Locale:     "en_GB",
		LocaleDir:  "locales",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads .env files (if present) and then the environment on top of Default.
// A missing .env file is not an error; malformed values are.
func Load(envFiles ...string) (Config, error) {
	// Not fatal: variables may be set directly
	_ = godotenv.Load(envFiles...)
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvMap); ok {
		cfg.MapPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvMoveTokens); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvMoveTokens, err)
		}
		if n < 0 {
			return cfg, fmt.Errorf("config: %s must not be negative, got %d", EnvMoveTokens, n)
		}
		cfg.MoveTokens = n
	}
	if v, ok := lookup(EnvLocale); ok && v != "" {
		cfg.Locale = v
	}
	if v, ok := lookup(EnvLocaleDir); ok && v != "" {
		cfg.LocaleDir = v
	}
	if v, ok := lookup(EnvTracing); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvTracing, err)
		}
		cfg.Tracing = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}

	return cfg, nil
}
