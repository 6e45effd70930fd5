// Package config holds the environment configuration of the aliasreg CLI.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Host backends selectable with ALIASREG_HOST.
const (
	HostNative = "native"
	HostLisp   = "lisp"
)

// Config is read from the environment; command-line flags override it.
type Config struct {
	// Table is an alias table file; empty means the built-in table.
	Table string `env:"ALIASREG_TABLE"`
	// Host selects the host environment aliases point into.
	Host string `env:"ALIASREG_HOST" envDefault:"native"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"ALIASREG_LOG_LEVEL" envDefault:"warn"`
	// Shell runs the process primitives; empty means $SHELL, then /bin/sh.
	Shell string `env:"ALIASREG_SHELL"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first field holding an unsupported value.
func (c Config) Validate() error {
	switch c.Host {
	case HostNative, HostLisp:
	default:
		return fmt.Errorf("invalid host %q: must be %q or %q", c.Host, HostNative, HostLisp)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
