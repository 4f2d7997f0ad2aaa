// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/keygate-tui/internal/ui/components"
)

const fieldWidth = 40

// View renders the current step centered in the terminal.
func (m Model) View() string {
	var card string
	if m.flow.InTwoFactor() {
		card = m.viewTwoFactor()
	} else {
		card = m.viewLogin()
	}

	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// =============================================================================
// LOGIN FORM
// =============================================================================

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Sign in to your account"))
	b.WriteString("\n\n")

	if m.errText != "" {
		b.WriteString(components.ErrorAlert(m.theme, m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Label.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.fieldBox(m.email.View(), m.focus == focusEmail))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.fieldBox(m.password.View(), m.focus == focusPassword))
	b.WriteString("\n\n")

	b.WriteString(m.loginButton())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Hint.Render(m.loginHint()))

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(components.TestCredentialsPanel(m.theme))
	}

	return m.theme.Card.Render(b.String())
}

func (m Model) loginButton() string {
	if m.loginPending {
		return m.theme.ButtonDisabled.Render(m.spinner.View() + " Signing in...")
	}
	if m.focus == focusSubmit {
		return m.theme.Button.Render("  Sign In  ")
	}
	return m.theme.ButtonOutline.Render("  Sign In  ")
}

func (m Model) loginHint() string {
	hint := "tab: next field • enter: sign in"
	if m.helpsAllowed {
		hint += " • ctrl+t: test accounts"
	}
	return hint
}

// =============================================================================
// TWO-FACTOR FORM
// =============================================================================

func (m Model) viewTwoFactor() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Two-Factor Authentication"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Enter the 6-digit code sent to " + m.flow.Email))
	b.WriteString("\n\n")

	if m.errText != "" {
		b.WriteString(components.ErrorAlert(m.theme, m.errText))
		b.WriteString("\n\n")
	}
	if m.notice != "" {
		b.WriteString(components.SuccessAlert(m.theme, m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(m.code.View())
	b.WriteString("\n\n")

	b.WriteString(m.verifyButton())
	b.WriteString("  ")
	b.WriteString(m.resendButton())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Hint.Render(m.twoFactorHint()))

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(components.TestCodesPanel(m.theme))
	}

	return m.theme.Card.Render(b.String())
}

func (m Model) verifyButton() string {
	if m.verifyPending {
		return m.theme.ButtonDisabled.Render(m.spinner.View() + " Verifying...")
	}
	if m.code.Complete() {
		return m.theme.Button.Render("  Verify  ")
	}
	return m.theme.ButtonDisabled.Render("  Verify  ")
}

func (m Model) resendButton() string {
	label := m.countdown.Label()
	if m.resendPending {
		return m.theme.ButtonDisabled.Render(m.spinner.View() + " Sending...")
	}
	if m.countdown.Ready() {
		return m.theme.ButtonOutline.Render(label)
	}
	return m.theme.ButtonDisabled.Render(label)
}

func (m Model) twoFactorHint() string {
	hint := "enter: verify • ctrl+n: new code • esc: back"
	if m.helpsAllowed {
		hint += " • ctrl+t: test codes"
	}
	return hint
}

func (m Model) fieldBox(inner string, focused bool) string {
	style := m.theme.FieldBox
	if focused {
		style = m.theme.FieldFocused
	}
	return style.Width(fieldWidth).Render(inner)
}
