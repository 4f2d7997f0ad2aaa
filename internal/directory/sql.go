// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the credential directory the mock backend
// authenticates against.
package directory

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// SQL STORE
// =============================================================================

// accountSchema creates the accounts table. Email is the natural key; there
// is no registration path, so rows only change via reseeding.
const accountSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	email         TEXT PRIMARY KEY,
	password_hash BLOB NOT NULL,
	requires_2fa  INTEGER NOT NULL DEFAULT 0
);
`

// SQLStore is a credential directory backed by SQLite. It implements the
// same Store contract as MemoryStore so the backend cannot tell them apart.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (or creates) the directory database at path and
// ensures the schema exists.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory database: %w", err)
	}
	if _, err := db.Exec(accountSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create accounts table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// NewSQLStore wraps an existing database handle, ensuring the schema
// exists. The caller keeps ownership of db.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(accountSchema); err != nil {
		return nil, fmt.Errorf("failed to create accounts table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// SeedAccounts inserts or replaces the given accounts, hashing passwords
// before they touch the database.
func (s *SQLStore) SeedAccounts(seeds []Seed) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO accounts (email, password_hash, requires_2fa) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
		if err != nil {
			return err
		}
		requires := 0
		if seed.RequiresTwoFactor {
			requires = 1
		}
		if _, err := stmt.Exec(seed.Email, hash, requires); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", seed.Email, err)
		}
	}

	return tx.Commit()
}

// Verify checks an email/password pair.
func (s *SQLStore) Verify(email, password string) (Account, error) {
	var hash []byte
	var requires int
	row := s.db.QueryRow(
		`SELECT password_hash, requires_2fa FROM accounts WHERE email = ?`, email)
	if err := row.Scan(&hash, &requires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNoUser
		}
		return Account{}, fmt.Errorf("failed to read account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return Account{}, ErrBadPassword
	}
	return Account{Email: email, RequiresTwoFactor: requires != 0}, nil
}

// Lookup returns the account for email without a password check.
func (s *SQLStore) Lookup(email string) (Account, bool) {
	var requires int
	row := s.db.QueryRow(`SELECT requires_2fa FROM accounts WHERE email = ?`, email)
	if err := row.Scan(&requires); err != nil {
		return Account{}, false
	}
	return Account{Email: email, RequiresTwoFactor: requires != 0}, true
}

// Accounts lists every directory entry, ordered by email. Used by the
// enrollment tool.
func (s *SQLStore) Accounts() ([]Account, error) {
	rows, err := s.db.Query(`SELECT email, requires_2fa FROM accounts ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		var requires int
		if err := rows.Scan(&a.Email, &requires); err != nil {
			return nil, err
		}
		a.RequiresTwoFactor = requires != 0
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
