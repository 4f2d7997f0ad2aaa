// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for keygate.
//
// Supports TOML configuration with sensible defaults and environment
// variable overrides.
//
// Configuration file locations (in order of precedence):
//   - $KEYGATE_CONFIG (explicit path)
//   - ~/.keygate/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete keygate configuration.
type Config struct {
	// Version of the config schema.
	Version string `toml:"version"`

	// Backend configures the simulated authentication service.
	Backend BackendConfig `toml:"backend"`

	// Storage configures the local stores.
	Storage StorageConfig `toml:"storage"`

	// UI configures the terminal front end.
	UI UIConfig `toml:"ui"`
}

// BackendConfig controls the mock backend's timing behavior.
type BackendConfig struct {
	// SimulateLatency enables the artificial per-call delay. Disable for
	// tests and demos.
	SimulateLatency bool `toml:"simulate_latency"`

	// LoginDelayMs is the simulated round trip for login (default 1000).
	LoginDelayMs int `toml:"login_delay_ms"`

	// VerifyDelayMs is the simulated round trip for code verification
	// (default 800).
	VerifyDelayMs int `toml:"verify_delay_ms"`

	// ResendDelayMs is the simulated round trip for code resend
	// (default 500).
	ResendDelayMs int `toml:"resend_delay_ms"`

	// SessionTTLSecs is the pending session validity window (default 300).
	SessionTTLSecs int `toml:"session_ttl_secs"`
}

// StorageConfig controls where local state lives.
type StorageConfig struct {
	// DataDir is the keygate home directory (default ~/.keygate).
	DataDir string `toml:"data_dir"`

	// UseSQLite stores the identity and credential directory in
	// keygate.db instead of flat JSON files.
	UseSQLite bool `toml:"use_sqlite"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// ResendIntervalSecs is the countdown before a new code may be
	// requested (default 60).
	ResendIntervalSecs int `toml:"resend_interval_secs"`

	// ShowTestCredentials shows the test credential help panel toggle.
	ShowTestCredentials bool `toml:"show_test_credentials"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			SimulateLatency: true,
			LoginDelayMs:    1000,
			VerifyDelayMs:   800,
			ResendDelayMs:   500,
			SessionTTLSecs:  300,
		},
		Storage: StorageConfig{
			UseSQLite: true,
		},
		UI: UIConfig{
			ResendIntervalSecs:  60,
			ShowTestCredentials: true,
		},
	}
}

// SessionTTL returns the pending session window as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Backend.SessionTTLSecs) * time.Second
}

// ResendInterval returns the countdown length as a duration.
func (c *Config) ResendInterval() time.Duration {
	return time.Duration(c.UI.ResendIntervalSecs) * time.Second
}

// ResolveDataDir returns the data directory, defaulting to ~/.keygate.
func (c *Config) ResolveDataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".keygate"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// configPath returns the config file location.
func configPath() (string, error) {
	if p := os.Getenv("KEYGATE_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".keygate", "config.toml"), nil
}

// Load reads the configuration file, layering it over the defaults. A
// missing file is not an error; the defaults apply.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.clamp()
	return cfg, nil
}

// applyEnvOverrides layers environment variables over the file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KEYGATE_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("KEYGATE_NO_LATENCY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			cfg.Backend.SimulateLatency = false
		}
	}
	if v := os.Getenv("KEYGATE_SESSION_TTL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Backend.SessionTTLSecs = n
		}
	}
}

// clamp keeps loaded values inside sane bounds.
func (c *Config) clamp() {
	if c.Backend.SessionTTLSecs <= 0 {
		c.Backend.SessionTTLSecs = 300
	}
	if c.UI.ResendIntervalSecs <= 0 {
		c.UI.ResendIntervalSecs = 60
	}
	if c.Backend.LoginDelayMs < 0 {
		c.Backend.LoginDelayMs = 0
	}
	if c.Backend.VerifyDelayMs < 0 {
		c.Backend.VerifyDelayMs = 0
	}
	if c.Backend.ResendDelayMs < 0 {
		c.Backend.ResendDelayMs = 0
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = DefaultConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the cached configuration.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}
