// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"time"

	"github.com/DeepakDkd/rag-agent/internal/model"
)

// =============================================================================
// SESSION STORE
// =============================================================================

// Store owns the ordered, append-only conversation log.
//
// All mutations happen on the UI goroutine in response to discrete events, so
// the store needs no locking. The clock is injected for deterministic tests.
type Store struct {
	storage  Storage
	now      func() time.Time
	messages []model.Message
}

// NewStore creates a store over the given storage and loads any existing
// history. Corrupt or missing storage loads as an empty log.
func NewStore(storage Storage) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
	}
	s.messages = s.Load()
	return s
}

// WithClock replaces the store's clock. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Load reads the persisted log from storage. It never fails: a missing,
// empty, or unparseable value yields an empty log.
func (s *Store) Load() []model.Message {
	data, err := s.storage.Read()
	if err != nil || len(data) == 0 {
		return []model.Message{}
	}

	var messages []model.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		// Corrupt history is treated as no history, not an error.
		return []model.Message{}
	}
	return messages
}

// Append extends the log with msg and persists the full sequence. A
// persistence failure is swallowed; the in-memory log stays authoritative.
func (s *Store) Append(msg model.Message) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	s.messages = append(s.messages, msg)
	s.persist()
}

// Clear empties the log and removes the storage entry.
func (s *Store) Clear() {
	s.messages = []model.Message{}
	s.storage.Delete()
}

// persist serializes the full log into storage, ignoring failures.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.messages, "", "  ")
	if err != nil {
		return
	}
	s.storage.Write(data)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns the in-memory log in creation order.
func (s *Store) Messages() []model.Message {
	return s.messages
}

// Len returns the number of messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// IsEmpty returns true if the log holds no messages.
func (s *Store) IsEmpty() bool {
	return len(s.messages) == 0
}

// Last returns the most recent message, or false if the log is empty.
func (s *Store) Last() (model.Message, bool) {
	if len(s.messages) == 0 {
		return model.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
