// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pending stores two-factor sessions awaiting code verification.
//
// A Session bridges a successful first-factor login and the second-factor
// code check: it is created when Login decides two-factor is required,
// refreshed when the user requests a new code, and deleted when a code is
// verified or the validity window lapses.
//
// The Repository interface keeps the backend decoupled from the storage
// medium. MemoryRepository is the only implementation today; a persistent
// store can swap in without touching the flow.
package pending
