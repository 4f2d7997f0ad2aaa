// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity persists the authenticated identity across restarts.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/keygate-tui/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore keeps the identity as a JSON file. Writes go through the
// atomic write+fsync path so a crash never leaves a torn record.
type FileStore struct {
	// Path is the identity file location.
	// Default: ~/.keygate/identity.json
	Path string
}

// NewFileStore creates a store at the default location.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{
		Path: filepath.Join(homeDir, ".keygate", "identity.json"),
	}, nil
}

// NewFileStoreWithPath creates a store at a custom location.
func NewFileStoreWithPath(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored identity.
func (s *FileStore) Load() (Identity, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Identity{}, ErrNotLoggedIn
		}
		return Identity{}, fmt.Errorf("failed to read identity file: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		// A corrupt file behaves like no login rather than wedging startup.
		return Identity{}, ErrNotLoggedIn
	}
	if !id.Valid() {
		return Identity{}, ErrNotLoggedIn
	}
	return id, nil
}

// Save persists the identity.
func (s *FileStore) Save(id Identity) error {
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	// 0600: the token is a credential
	return util.AtomicWriteFile(s.Path, data, 0600)
}

// Clear removes the stored identity.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove identity file: %w", err)
	}
	return nil
}
