// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Backend.SimulateLatency {
		t.Error("latency simulation should default on")
	}
	if cfg.SessionTTL() != 5*time.Minute {
		t.Errorf("SessionTTL = %v, want 5m", cfg.SessionTTL())
	}
	if cfg.ResendInterval() != 60*time.Second {
		t.Errorf("ResendInterval = %v, want 60s", cfg.ResendInterval())
	}
	if cfg.Backend.LoginDelayMs != 1000 || cfg.Backend.VerifyDelayMs != 800 || cfg.Backend.ResendDelayMs != 500 {
		t.Errorf("delays = %d/%d/%d, want 1000/800/500",
			cfg.Backend.LoginDelayMs, cfg.Backend.VerifyDelayMs, cfg.Backend.ResendDelayMs)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
version = "1"

[backend]
simulate_latency = false
session_ttl_secs = 120

[ui]
resend_interval_secs = 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("KEYGATE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.SimulateLatency {
		t.Error("simulate_latency should be false")
	}
	if cfg.SessionTTL() != 2*time.Minute {
		t.Errorf("SessionTTL = %v, want 2m", cfg.SessionTTL())
	}
	if cfg.ResendInterval() != 30*time.Second {
		t.Errorf("ResendInterval = %v, want 30s", cfg.ResendInterval())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("KEYGATE_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.SessionTTLSecs != 300 {
		t.Errorf("SessionTTLSecs = %d, want default 300", cfg.Backend.SessionTTLSecs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KEYGATE_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("KEYGATE_NO_LATENCY", "1")
	t.Setenv("KEYGATE_SESSION_TTL_SECS", "90")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.SimulateLatency {
		t.Error("KEYGATE_NO_LATENCY should disable latency simulation")
	}
	if cfg.Backend.SessionTTLSecs != 90 {
		t.Errorf("SessionTTLSecs = %d, want 90", cfg.Backend.SessionTTLSecs)
	}
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(DefaultConfig())
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
