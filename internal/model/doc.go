// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages.
//
// A Message is one turn of the conversation: who said it (Role), what was
// said (Content, raw markdown), and for assistant turns optionally where the
// answer came from (Source). Messages are value types; the session package
// owns ordering and persistence.
package model
