// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DeepakDkd/rag-agent/internal/model"
	"github.com/DeepakDkd/rag-agent/internal/util"
)

// Configuration constants for the answer endpoint.
const (
	// DefaultTimeout is the transport-level timeout for answer requests.
	// The request lifecycle itself imposes no timeout; this is the
	// underlying transport's own limit.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize caps the response body read to keep a misbehaving
	// endpoint from exhausting memory.
	MaxResponseSize = 1 << 20 // 1MB
)

// Apology is the fixed user-facing reply appended to the transcript when a
// request fails for any reason. Failure detail is never surfaced.
const Apology = "Sorry, I couldn't get an answer for that. Please try again."

// ErrNoEndpoint indicates the endpoint URL is not configured.
var ErrNoEndpoint = errors.New("answer endpoint not configured")

// =============================================================================
// WIRE TYPES
// =============================================================================

// askRequest is the outbound request body.
type askRequest struct {
	Query string `json:"query"`
}

// Result is the tagged success value of an answer request: the answer text
// plus optional provenance. Failure carries no value at all; the pair
// (Result, error) returned by Ask is collapsed by Settle.
type Result struct {
	Answer string       `json:"answer"`
	Source model.Source `json:"source"`
}

// APIError represents a non-2xx reply from the answer endpoint.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("answer endpoint returned HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("answer endpoint returned HTTP %d", e.Status)
}

// Is implements errors.Is support by matching on status.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the answer-serving endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithTimeout sets the transport timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Intended for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Ask posts the query and decodes the reply. It returns a Result only for a
// 2xx status with a well-formed body carrying a non-empty answer; anything
// else is an error. Unrecognized source values are dropped, not fatal, since
// provenance is optional.
func (c *Client) Ask(ctx context.Context, query string) (*Result, error) {
	if c.endpoint == "" {
		return nil, ErrNoEndpoint
	}

	body, err := json.Marshal(askRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: util.TruncateRunes(strings.TrimSpace(string(data)), 200),
		}
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed answer body: %w", err)
	}
	if result.Answer == "" {
		return nil, errors.New("malformed answer body: missing answer")
	}
	if !result.Source.Valid() {
		result.Source = model.SourceNone
	}

	return &result, nil
}

// =============================================================================
// SETTLEMENT
// =============================================================================

// Settle maps the outcome of Ask into the assistant message appended to the
// transcript. It is the single collapsing policy for all failure classes:
// success becomes an assistant message carrying the answer and its source,
// every failure becomes the fixed apology with no source.
func Settle(res *Result, err error) model.Message {
	if err != nil || res == nil {
		return model.NewAssistantMessage(Apology, model.SourceNone)
	}
	return model.NewAssistantMessage(res.Answer, res.Source)
}
