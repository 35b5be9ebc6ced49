// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package answer implements the client for the remote answer-serving
// endpoint.
//
// The endpoint is a black box: one POST with a JSON query, one JSON reply
// with an answer and optional provenance. The endpoint's failure taxonomy is
// opaque, so Settle collapses every failure class (transport error, non-2xx
// status, malformed body) into one fixed apology message. No retries, no
// backoff, no cancellation beyond the caller's context.
package answer
