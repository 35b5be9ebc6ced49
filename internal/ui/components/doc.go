// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the ragchat TUI:
// the markdown render pipeline, highlighted code blocks with a copy
// affordance, and the welcome screen.
package components
