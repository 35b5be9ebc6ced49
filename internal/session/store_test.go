// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DeepakDkd/rag-agent/internal/model"
)

// memoryStorage is an in-process Storage for tests.
type memoryStorage struct {
	data     []byte
	writeErr error
}

func (m *memoryStorage) Read() ([]byte, error) {
	if m.data == nil {
		return nil, os.ErrNotExist
	}
	return m.data, nil
}

func (m *memoryStorage) Write(data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = data
	return nil
}

func (m *memoryStorage) Delete() error {
	m.data = nil
	return nil
}

// =============================================================================
// STORE TESTS
// =============================================================================

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore(&memoryStorage{})

	if !store.IsEmpty() {
		t.Error("new store over empty storage should be empty")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}
}

func TestStoreAppendAndReload(t *testing.T) {
	storage := &memoryStorage{}
	store := NewStore(storage)

	store.Append(model.NewUserMessage("hello"))
	store.Append(model.NewAssistantMessage("hi there", model.SourceWeb))
	store.Append(model.NewUserMessage("follow up"))

	// A fresh store over the same storage simulates a restart.
	reloaded := NewStore(storage)

	want := store.Messages()
	got := reloaded.Messages()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Role != want[i].Role {
			t.Errorf("message %d role = %q, want %q", i, got[i].Role, want[i].Role)
		}
		if got[i].Content != want[i].Content {
			t.Errorf("message %d content = %q, want %q", i, got[i].Content, want[i].Content)
		}
		if got[i].Source != want[i].Source {
			t.Errorf("message %d source = %q, want %q", i, got[i].Source, want[i].Source)
		}
		// Timestamps survive within serialization precision.
		delta := got[i].Timestamp.Sub(want[i].Timestamp)
		if delta > time.Second || delta < -time.Second {
			t.Errorf("message %d timestamp drifted by %v", i, delta)
		}
	}
}

func TestStoreClear(t *testing.T) {
	storage := &memoryStorage{}
	store := NewStore(storage)

	store.Append(model.NewUserMessage("hello"))
	store.Clear()

	if !store.IsEmpty() {
		t.Error("store should be empty after Clear")
	}
	if reloaded := NewStore(storage); !reloaded.IsEmpty() {
		t.Error("storage entry should be removed after Clear")
	}
}

func TestStoreLoadCorruptStorage(t *testing.T) {
	storage := &memoryStorage{data: []byte("not json {{{")}

	store := NewStore(storage)
	if !store.IsEmpty() {
		t.Error("corrupt storage should load as empty history")
	}
}

func TestStoreSwallowsWriteFailure(t *testing.T) {
	storage := &memoryStorage{writeErr: errors.New("quota exceeded")}
	store := NewStore(storage)

	store.Append(model.NewUserMessage("hello"))

	// The in-memory log stays authoritative even though nothing persisted.
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
	if storage.data != nil {
		t.Error("failed write should not have stored anything")
	}
}

func TestStorePreservesOrder(t *testing.T) {
	store := NewStore(&memoryStorage{})

	for _, content := range []string{"one", "two", "three", "four"} {
		store.Append(model.NewUserMessage(content))
	}

	got := store.Messages()
	for i, want := range []string{"one", "two", "three", "four"} {
		if got[i].Content != want {
			t.Errorf("message %d = %q, want %q", i, got[i].Content, want)
		}
	}
}

func TestStoreLast(t *testing.T) {
	store := NewStore(&memoryStorage{})

	if _, ok := store.Last(); ok {
		t.Error("Last on empty store should report false")
	}

	store.Append(model.NewUserMessage("first"))
	store.Append(model.NewUserMessage("second"))

	last, ok := store.Last()
	if !ok || last.Content != "second" {
		t.Errorf("Last = %q, %v; want %q, true", last.Content, ok, "second")
	}
}

// =============================================================================
// FILE STORAGE TESTS
// =============================================================================

func TestFileStorageRoundTrip(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	store := NewStore(storage)

	store.Append(model.NewUserMessage("persisted"))

	reloaded := NewStore(NewFileStorage(filepath.Dir(storage.Path)))
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded %d messages, want 1", reloaded.Len())
	}
	if reloaded.Messages()[0].Content != "persisted" {
		t.Errorf("content = %q", reloaded.Messages()[0].Content)
	}
}

func TestFileStorageDeleteMissing(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	if err := storage.Delete(); err != nil {
		t.Errorf("deleting a missing entry should not error: %v", err)
	}
}

func TestFileStorageDeleteRemovesFile(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	if err := storage.Write([]byte("[]")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := storage.Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(storage.Path); !os.IsNotExist(err) {
		t.Error("history file should be gone after Delete")
	}
}
