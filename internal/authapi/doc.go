// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authapi provides the authentication backend contract and its mock
// implementation for the keygate TUI.
//
// The package exposes three operations behind the Client interface:
//
//   - Login: first-factor email/password check; either issues a token
//     directly or opens a pending two-factor session
//   - VerifyCode: second-factor six-digit code check against a pending
//     session; consumes the session and issues a token on success
//   - ResendCode: refreshes a pending session's validity window
//
// MockClient simulates a remote service entirely in process: each call
// sleeps for a configurable latency before resolving, and a fixed table of
// sentinel inputs deterministically produces every failure mode a real
// backend could return (see errors.go for the code taxonomy). Sentinel
// checks always run before real lookups, so a sentinel email wins even if
// a credential with the same address exists.
//
// All failures carry an *AuthError with an enumerated Code, except raw
// network and timeout simulations which surface as plain errors and are
// matched by message substring, the same way a transport error would be.
package authapi
