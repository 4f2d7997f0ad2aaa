// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity persists the authenticated identity across restarts.
package identity

import "errors"

// ErrNotLoggedIn - no identity is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// Identity is the durable client-side record of a logged-in user.
type Identity struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Valid reports whether the record is usable. A partial record (email
// without token or vice versa) counts as absent.
func (id Identity) Valid() bool {
	return id.Email != "" && id.Token != ""
}

// Store is the persistence contract for the identity record.
type Store interface {
	// Load returns the stored identity, or ErrNotLoggedIn if none exists.
	Load() (Identity, error)

	// Save persists the identity, replacing any previous record.
	Save(id Identity) error

	// Clear removes the stored identity. Clearing an empty store is a
	// no-op.
	Clear() error
}
