// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view and the request lifecycle around it.
//
// The model has exactly two request states: idle and awaiting-response. A
// submit appends the user message immediately (optimistic echo), dispatches
// one request, and refuses further submissions until the answer settles;
// settlement always appends exactly one assistant message, success or not.
// There is no cancellation and no streaming.
package chat
