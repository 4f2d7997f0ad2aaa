// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authflow is the client-side authentication state machine.
package authflow

import (
	"strings"

	"github.com/jeranaias/keygate-tui/internal/authapi"
)

// =============================================================================
// USER-FACING ERROR MESSAGES
// =============================================================================

// fallbackMessage covers failures with no recognizable code or transport
// signature.
const fallbackMessage = "An unexpected error occurred. Please try again."

// loginMessages maps backend codes to the message shown on the login form.
var loginMessages = map[authapi.Code]string{
	authapi.CodeInvalidCredentials: "Invalid email or password. Please check your credentials and try again.",
	authapi.CodeUserNotFound:       "No account found with this email address.",
	authapi.CodeAccountLocked:      "Your account has been locked due to too many failed login attempts. Please contact support.",
	authapi.CodeAccountSuspended:   "Your account has been suspended. Please contact support for assistance.",
	authapi.CodePasswordExpired:    "Your password has expired. Please reset your password to continue.",
	authapi.CodeRateLimitExceeded:  "Too many login attempts. Please wait a few minutes before trying again.",
	authapi.CodeServiceUnavailable: "The service is temporarily unavailable for maintenance. Please try again later.",
	authapi.CodeInvalidEmail:       "Please enter a valid email address.",
}

// twoFactorMessages maps backend codes to the message shown on the
// two-factor form.
var twoFactorMessages = map[authapi.Code]string{
	authapi.CodeInvalid2FACode:  "Invalid code.",
	authapi.CodeSessionExpired:  "Your session has expired. Please login again.",
	authapi.CodeInvalidSession:  "Invalid session. Please login again.",
	authapi.CodeTooManyAttempts: "Too many invalid attempts. Your account has been temporarily locked.",
}

// LoginMessage translates a login failure into its user-facing message.
// Untyped transport failures are detected by message substring, the same
// way a browser client would see them.
func LoginMessage(err error) string {
	if err == nil {
		return ""
	}
	if ae, ok := authapi.AsAuthError(err); ok {
		if msg, ok := loginMessages[ae.Code]; ok {
			return msg
		}
		if ae.Message != "" {
			return ae.Message
		}
		return fallbackMessage
	}

	text := err.Error()
	if strings.Contains(text, "network request failed") {
		return "Unable to connect to the server. Please check your internet connection and try again."
	}
	if strings.Contains(text, "timeout") {
		return "The request timed out. Please check your connection and try again."
	}
	return fallbackMessage
}

// TwoFactorMessage translates a verification or resend failure into its
// user-facing message.
func TwoFactorMessage(err error) string {
	if err == nil {
		return ""
	}
	if ae, ok := authapi.AsAuthError(err); ok {
		if msg, ok := twoFactorMessages[ae.Code]; ok {
			return msg
		}
		if ae.Message != "" {
			return ae.Message
		}
	}
	return fallbackMessage
}
