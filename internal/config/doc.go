// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for ragchat.
//
// Precedence, lowest to highest: built-in defaults, ~/.ragchat/config.toml,
// environment variables (RAGCHAT_ENDPOINT_URL, RAGCHAT_HISTORY_DIR,
// RAGCHAT_TIMEOUT_SECONDS).
package config
