// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the ordered conversation log and its persistence.
//
// The Store keeps messages in memory in strictly increasing creation order
// and mirrors the full log to durable storage on every append. Storage is an
// injected capability (a single read/write/delete entry under a fixed key),
// which keeps the store testable without touching the real filesystem.
//
// Storage failures never reach the caller: a missing or unparseable history
// loads as an empty log, and a failed write leaves the in-memory log
// authoritative for the rest of the process lifetime.
package session
