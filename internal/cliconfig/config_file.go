// SPDX-License-Identifier: MIT

package cliconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config with file-friendly types: durations are strings
// and booleans are pointers so "absent" differs from "false".
type FileConfig struct {
	LogLevel      string `toml:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat     string `toml:"log_format" yaml:"log_format" json:"log_format"`
	Quiet         *bool  `toml:"quiet" yaml:"quiet" json:"quiet"`
	Verify        *bool  `toml:"verify" yaml:"verify" json:"verify"`
	WatchDebounce string `toml:"watch_debounce" yaml:"watch_debounce" json:"watch_debounce"`
}

// LoadFileConfig reads and parses a config file. The decoder is picked by
// extension: .toml, .yaml/.yml, or .json/.jsonc (comments and trailing
// commas allowed).
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(b), &fc)
	default:
		return fc, fmt.Errorf("config %s: unsupported extension %q (want .toml, .yaml, .yml, .json or .jsonc)", path, ext)
	}
	if err != nil {
		return fc, fmt.Errorf("config %s: %w", path, err)
	}

	return fc, nil
}

// DefaultConfigPath returns ~/.boolgauss/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".boolgauss", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies fc to cfg, skipping explicitly changed flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setString(FlagLogFormat, fc.LogFormat, &cfg.LogFormat)
	s.setBool(FlagQuiet, fc.Quiet, &cfg.Quiet)
	s.setBool(FlagVerify, fc.Verify, &cfg.Verify)

	return s.setDuration(FlagWatchDebounce, fc.WatchDebounce, &cfg.WatchDebounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
