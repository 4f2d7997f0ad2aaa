// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity persists the authenticated identity across restarts.
//
// The identity is a plain {email, token} pair: its presence means the
// client renders the authenticated view on startup, its absence means the
// login flow runs. The flow treats the store as opaque get/set/remove
// storage; the medium is this package's concern alone.
//
// Two implementations:
//
//   - FileStore: JSON under ~/.keygate, written atomically with fsync
//   - SQLiteStore: a single-row table in the keygate database, used when
//     the app already has the database open for the credential directory
package identity
