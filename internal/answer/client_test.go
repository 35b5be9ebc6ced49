// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package answer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeepakDkd/rag-agent/internal/model"
)

// =============================================================================
// CLIENT TESTS
// =============================================================================

func TestAskSuccess(t *testing.T) {
	var gotBody askRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer": "hi", "source": "WEB"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	res, err := client.Ask(context.Background(), "hello?")

	require.NoError(t, err)
	assert.Equal(t, "hello?", gotBody.Query)
	assert.Equal(t, "hi", res.Answer)
	assert.Equal(t, model.SourceWeb, res.Source)
}

func TestAskDocumentSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "see page 3", "source": "PDF"}`))
	}))
	defer server.Close()

	res, err := NewClient(server.URL).Ask(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, model.SourceDocument, res.Source)
}

func TestAskUnknownSourceDropped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "ok", "source": "CARRIER-PIGEON"}`))
	}))
	defer server.Close()

	res, err := NewClient(server.URL).Ask(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, model.SourceNone, res.Source)
}

func TestAskNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Ask(context.Background(), "q")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestAskMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Ask(context.Background(), "q")
	require.Error(t, err)
}

func TestAskMissingAnswerField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"source": "WEB"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Ask(context.Background(), "q")
	require.Error(t, err)
}

func TestAskNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed before the request: connection refused.

	_, err := NewClient(server.URL).Ask(context.Background(), "q")
	require.Error(t, err)
}

func TestAskNoEndpoint(t *testing.T) {
	_, err := NewClient("").Ask(context.Background(), "q")
	require.ErrorIs(t, err, ErrNoEndpoint)
}

func TestAskContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).Ask(ctx, "q")
	require.Error(t, err)
}

// =============================================================================
// SETTLE TESTS
// =============================================================================

func TestSettleSuccess(t *testing.T) {
	msg := Settle(&Result{Answer: "hi", Source: model.SourceWeb}, nil)

	assert.Equal(t, model.RoleAssistant, msg.Role)
	assert.Equal(t, "hi", msg.Content)
	assert.Equal(t, model.SourceWeb, msg.Source)
}

func TestSettleFailure(t *testing.T) {
	// Every failure class collapses into the same apology.
	for name, err := range map[string]error{
		"transport":  assert.AnError,
		"api status": &APIError{Status: 503},
	} {
		t.Run(name, func(t *testing.T) {
			msg := Settle(nil, err)

			assert.Equal(t, model.RoleAssistant, msg.Role)
			assert.Equal(t, Apology, msg.Content)
			assert.Equal(t, model.SourceNone, msg.Source)
		})
	}
}

func TestSettleNilResultNoError(t *testing.T) {
	msg := Settle(nil, nil)
	assert.Equal(t, Apology, msg.Content)
}
