// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want %d", cfg.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if cfg.EndpointURL != "" {
		t.Errorf("EndpointURL should default empty, got %q", cfg.EndpointURL)
	}
	if !cfg.UI.ShowTimestamps {
		t.Error("ShowTimestamps should default true")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
endpoint_url = "https://answers.example.com/api/chat"
timeout_seconds = 30

[ui]
show_timestamps = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if cfg.EndpointURL != "https://answers.example.com/api/chat" {
		t.Errorf("EndpointURL = %q", cfg.EndpointURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.UI.ShowTimestamps {
		t.Error("ShowTimestamps should be false")
	}
}

func TestLoadTOMLMissingFile(t *testing.T) {
	cfg := Default()
	err := LoadTOML(cfg, filepath.Join(t.TempDir(), "nope.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadTOMLInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := LoadTOML(Default(), path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvEndpointURL, "http://localhost:9999/ask")
	t.Setenv(EnvHistoryDir, "/tmp/ragchat-test")
	t.Setenv(EnvTimeoutSeconds, "15")

	cfg := Default()
	cfg.EndpointURL = "https://from-file.example.com"
	cfg.ApplyEnvOverrides()

	if cfg.EndpointURL != "http://localhost:9999/ask" {
		t.Errorf("EndpointURL = %q, env should win over file", cfg.EndpointURL)
	}
	if cfg.HistoryDir != "/tmp/ragchat-test" {
		t.Errorf("HistoryDir = %q", cfg.HistoryDir)
	}
	if cfg.TimeoutSeconds != 15 {
		t.Errorf("TimeoutSeconds = %d, want 15", cfg.TimeoutSeconds)
	}
}

func TestApplyEnvOverridesIgnoresBadTimeout(t *testing.T) {
	t.Setenv(EnvTimeoutSeconds, "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want default", cfg.TimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"valid https endpoint", func(c *Config) { c.EndpointURL = "https://x.example.com/ask" }, false},
		{"valid http endpoint", func(c *Config) { c.EndpointURL = "http://localhost:8080" }, false},
		{"bad scheme", func(c *Config) { c.EndpointURL = "ftp://x.example.com" }, true},
		{"not a url", func(c *Config) { c.EndpointURL = "::nope::" }, true},
		{"missing host", func(c *Config) { c.EndpointURL = "http://" }, true},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"negative timeout", func(c *Config) { c.TimeoutSeconds = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
