// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authflow is the client-side authentication state machine.
package authflow

import (
	"errors"
	"strings"
)

// =============================================================================
// CLIENT-SIDE VALIDATION
// =============================================================================

// Validation failures never reach the backend contract; the form surfaces
// them inline and stays editable.
var (
	// ErrEmailRequired - empty email field.
	ErrEmailRequired = errors.New("Email is required")

	// ErrEmailInvalid - email does not look like an address.
	ErrEmailInvalid = errors.New("Please enter a valid email address")

	// ErrPasswordRequired - empty password field.
	ErrPasswordRequired = errors.New("Password is required")

	// ErrCodeIncomplete - fewer than six digits entered.
	ErrCodeIncomplete = errors.New("Please enter all 6 digits")

	// ErrCodeNotDigits - code contains a non-digit character.
	ErrCodeNotDigits = errors.New("Code must contain only digits")
)

// ValidateEmail checks the email field before submission. The shape check
// is deliberately loose (one @ with something on both sides and a dot in
// the domain); the backend owns real validation.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.Contains(domain, "@") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword checks the password field before submission.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateCode checks a six-digit code before submission.
func ValidateCode(code string) error {
	if len(code) != 6 {
		return ErrCodeIncomplete
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrCodeNotDigits
		}
	}
	return nil
}
