// SPDX-License-Identifier: MIT
package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, 100*time.Millisecond, cfg.WatchDebounce)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"json format", func(c *Config) { c.LogFormat = "json" }, false},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty level", func(c *Config) { c.LogLevel = "" }, true},
		{"zero debounce", func(c *Config) { c.WatchDebounce = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadFileConfigFormats(t *testing.T) {
	want := FileConfig{
		LogLevel:      "debug",
		LogFormat:     "json",
		Quiet:         boolPtr(true),
		Verify:        boolPtr(false),
		WatchDebounce: "250ms",
	}

	tests := []struct {
		name string
		file string
		body string
	}{
		{"toml", "config.toml", `
log_level = "debug"
log_format = "json"
quiet = true
verify = false
watch_debounce = "250ms"
`},
		{"yaml", "config.yaml", `
log_level: debug
log_format: json
quiet: true
verify: false
watch_debounce: 250ms
`},
		{"yml", "config.yml", "log_level: debug\nlog_format: json\nquiet: true\nverify: false\nwatch_debounce: 250ms\n"},
		{"jsonc", "config.jsonc", `{
  // comments are allowed
  "log_level": "debug",
  "log_format": "json",
  "quiet": true,
  "verify": false,
  /* trailing commas are stripped */
  "watch_debounce": "250ms",
}`},
		{"json", "config.json", `{"log_level":"debug","log_format":"json","quiet":true,"verify":false,"watch_debounce":"250ms"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc, err := LoadFileConfig(writeConfig(t, tc.file, tc.body))
			require.NoError(t, err)
			require.Equal(t, want, fc)
		})
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	_, err := LoadFileConfig(writeConfig(t, "config.ini", "x=1"))
	require.ErrorContains(t, err, "unsupported extension")

	_, err = LoadFileConfig(writeConfig(t, "config.toml", "log_level = "))
	require.Error(t, err)

	_, err = LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name     string
		fc       FileConfig
		changed  map[string]bool
		expected func() Config
		wantErr  bool
	}{
		{
			name: "applies all values",
			fc: FileConfig{
				LogLevel:      "debug",
				LogFormat:     "json",
				Quiet:         boolPtr(true),
				Verify:        boolPtr(true),
				WatchDebounce: "1s",
			},
			changed: map[string]bool{},
			expected: func() Config {
				return Config{LogLevel: "debug", LogFormat: "json", Quiet: true, Verify: true, WatchDebounce: time.Second}
			},
		},
		{
			name:    "respects changed flags",
			fc:      FileConfig{LogLevel: "debug", Verify: boolPtr(true)},
			changed: map[string]bool{FlagLogLevel: true},
			expected: func() Config {
				c := DefaultConfig()
				c.Verify = true
				return c
			},
		},
		{
			name:     "bad duration",
			fc:       FileConfig{WatchDebounce: "soon"},
			changed:  map[string]bool{},
			expected: DefaultConfig,
			wantErr:  true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ApplyFileConfig(&cfg, tc.fc, tc.changed)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected(), cfg)
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvQuiet, "1")
	t.Setenv(EnvVerify, "true")
	t.Setenv(EnvWatchDebounce, "2s")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{FlagLogFormat: true}))
	require.Equal(t, Config{
		LogLevel:      "info",
		LogFormat:     "console", // flag was set explicitly
		Quiet:         true,
		Verify:        true,
		WatchDebounce: 2 * time.Second,
	}, cfg)
}

func TestApplyEnvConfigBadBool(t *testing.T) {
	t.Setenv(EnvVerify, "sometimes")

	cfg := DefaultConfig()
	require.Error(t, ApplyEnvConfig(&cfg, map[string]bool{}))
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "config.toml", "")
	require.True(t, FileExists(path))
	require.False(t, FileExists(path+".missing"))
}
