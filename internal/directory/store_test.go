// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package directory

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// MEMORY STORE TESTS
// =============================================================================

func TestMemoryStore_Verify(t *testing.T) {
	store, err := NewMemoryStore(DefaultSeeds())
	require.NoError(t, err)

	acct, err := store.Verify("user@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", acct.Email)
	require.True(t, acct.RequiresTwoFactor)

	acct, err = store.Verify("admin@example.com", "admin123")
	require.NoError(t, err)
	require.False(t, acct.RequiresTwoFactor)

	_, err = store.Verify("user@example.com", "wrong")
	require.True(t, errors.Is(err, ErrBadPassword))

	_, err = store.Verify("nobody@example.com", "password123")
	require.True(t, errors.Is(err, ErrNoUser))
}

func TestMemoryStore_Lookup(t *testing.T) {
	store, err := NewMemoryStore(DefaultSeeds())
	require.NoError(t, err)

	acct, ok := store.Lookup("test@mail.com")
	require.True(t, ok)
	require.True(t, acct.RequiresTwoFactor)

	_, ok = store.Lookup("nobody@example.com")
	require.False(t, ok)
}

// =============================================================================
// SQL STORE TESTS
// =============================================================================

func TestSQLStore_SeedAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.db")

	store, err := OpenSQLStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SeedAccounts(DefaultSeeds()))

	acct, err := store.Verify("user@example.com", "password123")
	require.NoError(t, err)
	require.True(t, acct.RequiresTwoFactor)

	_, err = store.Verify("user@example.com", "wrong")
	require.True(t, errors.Is(err, ErrBadPassword))

	_, err = store.Verify("nobody@example.com", "x")
	require.True(t, errors.Is(err, ErrNoUser))
}

func TestSQLStore_ReseedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.db")

	store, err := OpenSQLStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SeedAccounts(DefaultSeeds()))
	require.NoError(t, store.SeedAccounts(DefaultSeeds()))

	accounts, err := store.Accounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
}

func TestSQLStore_MatchesMemoryStore(t *testing.T) {
	// Both implementations must satisfy the same contract: the backend
	// cannot tell which one it was handed.
	path := filepath.Join(t.TempDir(), "directory.db")

	sqlStore, err := OpenSQLStore(path)
	require.NoError(t, err)
	defer sqlStore.Close()
	require.NoError(t, sqlStore.SeedAccounts(DefaultSeeds()))

	memStore, err := NewMemoryStore(DefaultSeeds())
	require.NoError(t, err)

	stores := map[string]Store{"memory": memStore, "sql": sqlStore}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			acct, err := store.Verify("admin@example.com", "admin123")
			require.NoError(t, err)
			require.False(t, acct.RequiresTwoFactor)

			_, ok := store.Lookup("user@example.com")
			require.True(t, ok)
		})
	}
}
