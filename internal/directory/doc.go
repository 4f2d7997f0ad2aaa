// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the credential directory the mock backend
// authenticates against.
//
// Accounts are seeded once at startup and immutable afterwards - there is
// no registration. Two Store implementations exist:
//
//   - MemoryStore: the mock default, a flat in-process table
//   - SQLStore: the same contract over SQLite, demonstrating that a real
//     datastore can replace the map without touching the auth flow
//
// Both store passwords as bcrypt hashes; Verify never sees a stored
// plaintext.
package directory
