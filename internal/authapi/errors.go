// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authapi provides the authentication backend contract and its mock
// implementation for the keygate TUI.
package authapi

import "errors"

// =============================================================================
// ERROR CODES
// =============================================================================

// Code identifies a backend failure independently of transport status.
type Code string

const (
	// CodeInvalidCredentials - email/password pair did not match.
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	// CodeUserNotFound - no account exists for the email.
	CodeUserNotFound Code = "USER_NOT_FOUND"

	// CodeAccountLocked - account locked after repeated failures.
	CodeAccountLocked Code = "ACCOUNT_LOCKED"

	// CodeAccountSuspended - account administratively suspended.
	CodeAccountSuspended Code = "ACCOUNT_SUSPENDED"

	// CodePasswordExpired - password must be reset before login.
	CodePasswordExpired Code = "PASSWORD_EXPIRED"

	// CodeRateLimitExceeded - too many login attempts.
	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"

	// CodeServiceUnavailable - backend in maintenance mode.
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// CodeInvalidEmail - email failed server-side format validation.
	CodeInvalidEmail Code = "INVALID_EMAIL"

	// CodeInvalid2FACode - six-digit code rejected.
	CodeInvalid2FACode Code = "INVALID_2FA_CODE"

	// CodeSessionExpired - pending session passed its validity window.
	CodeSessionExpired Code = "SESSION_EXPIRED"

	// CodeInvalidSession - pending session unknown or already consumed.
	CodeInvalidSession Code = "INVALID_SESSION"

	// CodeTooManyAttempts - second factor locked out after repeated misses.
	CodeTooManyAttempts Code = "TOO_MANY_ATTEMPTS"
)

// =============================================================================
// AUTH ERROR
// =============================================================================

// AuthError is a typed backend failure. Code carries the enumerated error
// kind; HTTPStatus mirrors what a real transport would have returned and is
// informational only - callers branch on Code, never on the status number.
type AuthError struct {
	Code       Code
	HTTPStatus int
	Message    string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates a typed backend failure.
func NewAuthError(code Code, status int, message string) *AuthError {
	return &AuthError{Code: code, HTTPStatus: status, Message: message}
}

// AsAuthError unwraps err into an *AuthError if it carries one.
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// =============================================================================
// UNTYPED FAILURES
// =============================================================================

// Raw transport-level failures carry no Code. The controller detects them
// by message substring, matching how an fetch-style network error surfaces.
var (
	// ErrNetwork simulates a failed network request.
	ErrNetwork = errors.New("network request failed")

	// ErrTimeout simulates a request that never resolved in time.
	ErrTimeout = errors.New("request timeout")
)
