// SPDX-License-Identifier: MIT

// Package cliconfig holds the boolgauss CLI configuration and its layering:
// defaults < config file < BOOLGAUSS_* environment < explicitly set flags.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/boolgauss/log"
)

// Flag names. Config sources are skipped for any of these the user set on
// the command line.
const (
	FlagConfig        = "config"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagQuiet         = "quiet"
	FlagVerify        = "verify"
	FlagWatchDebounce = "watch-debounce"
)

// Config holds CLI configuration for boolgauss.
type Config struct {
	LogLevel  string
	LogFormat string

	// Quiet suppresses echoing matrices to stdout.
	Quiet bool
	// Verify checks M·M⁻¹ == I after inversion.
	Verify bool

	// WatchDebounce coalesces bursts of file events in watch mode.
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "warn",
		LogFormat:     log.FormatConsole,
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("log-format must be %q or %q, got %q", log.FormatConsole, log.FormatJSON, c.LogFormat)
	}
	if c.LogLevel == "" {
		return fmt.Errorf("log-level is required")
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch debounce must be positive")
	}

	return nil
}

// configSetter applies values while respecting flag precedence: a value is
// only applied if the corresponding flag was not explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBoolFromString parses an environment-style boolean ("true", "1", "false", ...).
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
