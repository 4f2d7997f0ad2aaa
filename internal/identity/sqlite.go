// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity persists the authenticated identity across restarts.
package identity

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// SQLITE STORE
// =============================================================================

// identitySchema holds at most one row; id is pinned to 1 so Save is a
// plain upsert.
const identitySchema = `
CREATE TABLE IF NOT EXISTS identity (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	email TEXT NOT NULL,
	token TEXT NOT NULL
);
`

// SQLiteStore keeps the identity in the keygate database. It shares the
// handle with the credential directory so the app opens one file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open identity database: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStore wraps an existing database handle, ensuring the schema
// exists. The caller keeps ownership of db.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(identitySchema); err != nil {
		return nil, fmt.Errorf("failed to create identity table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the stored identity.
func (s *SQLiteStore) Load() (Identity, error) {
	var id Identity
	row := s.db.QueryRow(`SELECT email, token FROM identity WHERE id = 1`)
	if err := row.Scan(&id.Email, &id.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrNotLoggedIn
		}
		return Identity{}, fmt.Errorf("failed to read identity: %w", err)
	}
	if !id.Valid() {
		return Identity{}, ErrNotLoggedIn
	}
	return id, nil
}

// Save persists the identity.
func (s *SQLiteStore) Save(id Identity) error {
	_, err := s.db.Exec(
		`INSERT INTO identity (id, email, token) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET email = excluded.email, token = excluded.token`,
		id.Email, id.Token)
	if err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}
	return nil
}

// Clear removes the stored identity.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM identity WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}
