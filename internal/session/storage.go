// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"os"
	"path/filepath"

	"github.com/DeepakDkd/rag-agent/internal/util"
)

// HistoryFileName is the fixed key under which the conversation log is stored.
const HistoryFileName = "history.json"

// Storage is the durable entry the Store mirrors the conversation log into.
// Implementations hold exactly one value under a fixed key.
type Storage interface {
	// Read returns the stored value, or an error if it is missing or
	// unreadable. Callers treat any error as "no history".
	Read() ([]byte, error)

	// Write replaces the stored value.
	Write(data []byte) error

	// Delete removes the stored value. Deleting a missing value is not an
	// error.
	Delete() error
}

// =============================================================================
// FILE STORAGE
// =============================================================================

// FileStorage stores the log as a JSON file, written atomically.
type FileStorage struct {
	Path string
}

// NewFileStorage creates file-backed storage under dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{Path: filepath.Join(dir, HistoryFileName)}
}

// DefaultHistoryDir returns the default directory for the history file,
// ~/.ragchat on every platform.
func DefaultHistoryDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ragchat"), nil
}

// Read returns the file contents.
func (f *FileStorage) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Write replaces the file contents atomically.
func (f *FileStorage) Write(data []byte) error {
	return util.AtomicWriteFile(f.Path, data, 0644)
}

// Delete removes the file.
func (f *FileStorage) Delete() error {
	err := os.Remove(f.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
