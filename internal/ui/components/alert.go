// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the keygate TUI.
package components

import (
	"strings"

	"github.com/jeranaias/keygate-tui/internal/ui/styles"
)

// =============================================================================
// ALERTS AND PANELS
// =============================================================================

// ErrorAlert renders an error banner, or nothing for an empty message.
func ErrorAlert(theme *styles.Theme, message string) string {
	if message == "" {
		return ""
	}
	return theme.ErrorBanner.Render(message)
}

// SuccessAlert renders a success banner, or nothing for an empty message.
func SuccessAlert(theme *styles.Theme, message string) string {
	if message == "" {
		return ""
	}
	return theme.SuccessBanner.Render(message)
}

// TestCredentialsPanel lists the fixed accounts and login sentinels. Shown
// behind a toggle on the login form, mirroring the help panel of the web
// client this replaces.
func TestCredentialsPanel(theme *styles.Theme) string {
	lines := []string{
		"Test Credentials & Error Scenarios:",
		"  Valid:          user@example.com / password123 (2FA required)",
		"  Valid:          admin@example.com / admin123 (no 2FA)",
		"  Network Error:  network@error.com",
		"  Server Error:   server@error.com",
		"  Account Locked: locked@account.com",
		"  Rate Limited:   ratelimit@test.com",
	}
	return theme.InfoPanel.Render(strings.Join(lines, "\n"))
}

// TestCodesPanel lists the fixed verification codes and session sentinels.
func TestCodesPanel(theme *styles.Theme) string {
	lines := []string{
		"Test Codes & Error Scenarios:",
		"  Valid:             123456 or 131311",
		"  Invalid Code:      111111",
		"  Too Many Attempts: 000000",
	}
	return theme.InfoPanel.Render(strings.Join(lines, "\n"))
}
