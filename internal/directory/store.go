// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the credential directory the mock backend
// authenticates against.
package directory

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNoUser - no account exists for the email.
	ErrNoUser = errors.New("user not found in directory")

	// ErrBadPassword - password did not match the stored hash.
	ErrBadPassword = errors.New("password mismatch")
)

// =============================================================================
// ACCOUNT TYPES
// =============================================================================

// Account is a directory entry as seen by the backend. The password hash
// never leaves the store.
type Account struct {
	Email             string
	RequiresTwoFactor bool
}

// Seed is an account plus its plaintext password, used only at seeding
// time. The store hashes the password immediately.
type Seed struct {
	Email             string
	Password          string
	RequiresTwoFactor bool
}

// DefaultSeeds returns the fixed test accounts the mock ships with.
func DefaultSeeds() []Seed {
	return []Seed{
		{Email: "user@example.com", Password: "password123", RequiresTwoFactor: true},
		{Email: "admin@example.com", Password: "admin123", RequiresTwoFactor: false},
		{Email: "test@mail.com", Password: "test123", RequiresTwoFactor: true},
	}
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store is the credential directory contract.
type Store interface {
	// Verify checks an email/password pair. Returns ErrNoUser when the
	// account is absent and ErrBadPassword on a hash mismatch.
	Verify(email, password string) (Account, error)

	// Lookup returns the account for email without checking a password.
	Lookup(email string) (Account, bool)
}

// =============================================================================
// MEMORY STORE
// =============================================================================

// bcryptCost is deliberately low: these are fixed test credentials and the
// mock runs hashing on every login attempt.
const bcryptCost = bcrypt.MinCost

type memoryAccount struct {
	account Account
	hash    []byte
}

// MemoryStore is the in-process credential directory.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]memoryAccount
}

// NewMemoryStore creates a directory seeded with the given accounts.
func NewMemoryStore(seeds []Seed) (*MemoryStore, error) {
	s := &MemoryStore{accounts: make(map[string]memoryAccount, len(seeds))}
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		s.accounts[seed.Email] = memoryAccount{
			account: Account{Email: seed.Email, RequiresTwoFactor: seed.RequiresTwoFactor},
			hash:    hash,
		}
	}
	return s, nil
}

// Verify checks an email/password pair.
func (s *MemoryStore) Verify(email, password string) (Account, error) {
	s.mu.RLock()
	entry, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return Account{}, ErrNoUser
	}
	if err := bcrypt.CompareHashAndPassword(entry.hash, []byte(password)); err != nil {
		return Account{}, ErrBadPassword
	}
	return entry.account, nil
}

// Lookup returns the account for email without a password check.
func (s *MemoryStore) Lookup(email string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.accounts[email]
	if !ok {
		return Account{}, false
	}
	return entry.account, true
}
