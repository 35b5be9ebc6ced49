// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Environment variable names. The endpoint URL is plain configuration,
// not a secret.
const (
	EnvEndpointURL    = "RAGCHAT_ENDPOINT_URL"
	EnvHistoryDir     = "RAGCHAT_HISTORY_DIR"
	EnvTimeoutSeconds = "RAGCHAT_TIMEOUT_SECONDS"
)

// DefaultTimeoutSeconds is the default transport timeout.
const DefaultTimeoutSeconds = 60

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ragchat configuration.
type Config struct {
	// EndpointURL is the answer-serving endpoint.
	EndpointURL string `toml:"endpoint_url"`

	// TimeoutSeconds is the transport-level request timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// HistoryDir is where the conversation history file lives.
	// Default: ~/.ragchat
	HistoryDir string `toml:"history_dir"`

	// UI holds display settings.
	UI UIConfig `toml:"ui"`
}

// UIConfig contains display configuration.
type UIConfig struct {
	// ShowTimestamps toggles per-message timestamps in the transcript.
	ShowTimestamps bool `toml:"show_timestamps"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
		UI: UIConfig{
			ShowTimestamps: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the ragchat configuration directory (~/.ragchat).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ragchat"), nil
}

// Path returns the configuration file path (~/.ragchat/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load builds the effective configuration: defaults, then the config file if
// present, then environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if err := LoadTOML(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()

	if cfg.HistoryDir == "" {
		dir, err := Dir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine history directory: %w", err)
		}
		cfg.HistoryDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML config file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variables over the current values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvEndpointURL); v != "" {
		c.EndpointURL = v
	}
	if v := os.Getenv(EnvHistoryDir); v != "" {
		c.HistoryDir = v
	}
	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for consistency. An empty endpoint is
// allowed at load time; the client reports it when a query is actually sent.
func (c *Config) Validate() error {
	if c.EndpointURL != "" {
		u, err := url.Parse(c.EndpointURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("endpoint_url %q is not a valid http(s) URL", c.EndpointURL)
		}
	}
	if c.TimeoutSeconds <= 0 {
		return errors.New("timeout_seconds must be positive")
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes cfg to the default config path, creating the directory if
// needed.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}
