// SPDX-License-Identifier: MIT

package cliconfig

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvLogLevel      = "BOOLGAUSS_LOG_LEVEL"
	EnvLogFormat     = "BOOLGAUSS_LOG_FORMAT"
	EnvQuiet         = "BOOLGAUSS_QUIET"
	EnvVerify        = "BOOLGAUSS_VERIFY"
	EnvWatchDebounce = "BOOLGAUSS_WATCH_DEBOUNCE"
)

// ApplyEnvConfig applies BOOLGAUSS_* variables to cfg. They override file
// config but are overridden by explicitly changed flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagLogLevel, os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setString(FlagLogFormat, os.Getenv(EnvLogFormat), &cfg.LogFormat)

	if err := s.setBoolFromString(FlagQuiet, os.Getenv(EnvQuiet), &cfg.Quiet); err != nil {
		return err
	}
	if err := s.setBoolFromString(FlagVerify, os.Getenv(EnvVerify), &cfg.Verify); err != nil {
		return err
	}

	return s.setDuration(FlagWatchDebounce, os.Getenv(EnvWatchDebounce), &cfg.WatchDebounce)
}
