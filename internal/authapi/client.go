// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authapi provides the authentication backend contract and its mock
// implementation for the keygate TUI.
package authapi

import "context"

// =============================================================================
// RESULT TYPES
// =============================================================================

// LoginResult is the successful outcome of a first-factor login.
type LoginResult struct {
	// RequiresTwoFactor signals that a code must be verified before a
	// token is issued. When true, SessionID carries the pending session
	// and Token is empty.
	RequiresTwoFactor bool

	// SessionID identifies the pending two-factor session. Empty when
	// RequiresTwoFactor is false.
	SessionID string

	// Token is the issued authentication token for direct logins.
	// Empty when RequiresTwoFactor is true.
	Token string

	// Message is a human-readable status line.
	Message string
}

// VerifyResult is the successful outcome of a second-factor verification.
type VerifyResult struct {
	// Token is the issued authentication token.
	Token string

	// Message is a human-readable status line.
	Message string
}

// ResendResult confirms a code resend.
type ResendResult struct {
	Message string
}

// =============================================================================
// CLIENT INTERFACE
// =============================================================================

// Client is the logical backend contract. It is in-process today but shaped
// so a real network transport can implement it unchanged: every call takes
// a context, blocks for the duration of the (simulated) round trip, and
// returns either a result or an error.
type Client interface {
	// Login performs the first-factor email/password check.
	Login(ctx context.Context, email, password string) (LoginResult, error)

	// VerifyCode checks a six-digit code against a pending session.
	// The session is consumed on success.
	VerifyCode(ctx context.Context, sessionID, code string) (VerifyResult, error)

	// ResendCode refreshes a pending session's validity window.
	ResendCode(ctx context.Context, sessionID string) (ResendResult, error)
}
