// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/keygate-tui/internal/authflow"
	"github.com/jeranaias/keygate-tui/internal/ui/components"
)

// Update advances the view in response to a message. The root model calls
// this for every message while the authentication view is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.CodeCompleteMsg:
		return m.submitVerify()

	case components.CountdownTickMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case VerifyResultMsg:
		return m.handleVerifyResult(msg)

	case ResendResultMsg:
		return m.handleResendResult(msg)

	case noticeExpiredMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.flow.InTwoFactor() {
		return m.handleTwoFactorKey(msg)
	}
	return m.handleLoginKey(msg)
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.setFocus(nextFocus(m.focus))
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus(prevFocus(m.focus))
		return m, nil

	case tea.KeyEnter:
		return m.submitLogin()

	case tea.KeyCtrlT:
		if m.helpsAllowed {
			m.showHelp = !m.showHelp
		}
		return m, nil
	}

	// Edits while a request is in flight are ignored; the form is locked
	// until the result comes back.
	if m.loginPending {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) handleTwoFactorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.resetToLogin()
		return m, nil

	case tea.KeyEnter:
		if m.code.Complete() {
			return m.submitVerify()
		}
		m.errText = authflow.ErrCodeIncomplete.Error()
		return m, nil

	case tea.KeyCtrlT:
		if m.helpsAllowed {
			m.showHelp = !m.showHelp
		}
		return m, nil

	case tea.KeyCtrlN:
		return m.requestResend()
	}

	if m.verifyPending {
		return m, nil
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func nextFocus(f focusTarget) focusTarget {
	if f == focusSubmit {
		return focusEmail
	}
	return f + 1
}

func prevFocus(f focusTarget) focusTarget {
	if f == focusEmail {
		return focusSubmit
	}
	return f - 1
}

// =============================================================================
// SUBMISSION
// =============================================================================

func (m Model) submitLogin() (Model, tea.Cmd) {
	if m.loginPending {
		return m, nil
	}

	email := m.email.Value()
	password := m.password.Value()

	if err := authflow.ValidateEmail(email); err != nil {
		m.errText = err.Error()
		m.setFocus(focusEmail)
		return m, nil
	}
	if err := authflow.ValidatePassword(password); err != nil {
		m.errText = err.Error()
		m.setFocus(focusPassword)
		return m, nil
	}

	m.loginPending = true
	m.errText = ""
	m.notice = ""
	return m, tea.Batch(
		loginCmd(m.client, email, password),
		m.spinner.Tick,
	)
}

func (m Model) submitVerify() (Model, tea.Cmd) {
	if m.verifyPending || !m.code.Complete() {
		return m, nil
	}

	m.verifyPending = true
	m.errText = ""
	m.notice = ""
	m.code.SetError(false)
	return m, tea.Batch(
		verifyCmd(m.client, m.flow.SessionID, m.code.Value()),
		m.spinner.Tick,
	)
}

// requestResend fires the resend call and restarts the countdown right
// away. The countdown reflects when the user may ask again, not whether
// the backend accepted; a failure still surfaces as an error banner.
func (m Model) requestResend() (Model, tea.Cmd) {
	if m.resendPending || !m.countdown.Ready() {
		return m, nil
	}

	m.resendPending = true
	m.errText = ""
	m.notice = ""
	return m, tea.Batch(
		resendCmd(m.client, m.flow.SessionID),
		m.countdown.Start(),
		m.spinner.Tick,
	)
}

// =============================================================================
// RESULT HANDLING
// =============================================================================

func (m Model) handleLoginResult(msg LoginResultMsg) (Model, tea.Cmd) {
	m.loginPending = false

	if msg.Err != nil {
		m.errText = authflow.LoginMessage(msg.Err)
		return m, nil
	}

	next, id := m.flow.ApplyLogin(msg.Email, msg.Result)
	m.flow = next

	if id != nil {
		return m, authenticatedCmd(m.identities, *id)
	}

	// Two-factor step: fresh code cells, countdown running, focus moves
	// to the first cell.
	m.errText = ""
	m.code.Reset()
	m.code.Focus()
	return m, m.countdown.Start()
}

func (m Model) handleVerifyResult(msg VerifyResultMsg) (Model, tea.Cmd) {
	// The user may have left the code form while the request was in
	// flight. Back discards the session, so a late result has nothing to
	// apply to; authenticating from the login step would persist an
	// identity with no email.
	if !m.flow.InTwoFactor() {
		return m, nil
	}
	m.verifyPending = false

	if msg.Err != nil {
		m.errText = authflow.TwoFactorMessage(msg.Err)
		m.code.SetError(true)
		return m, nil
	}

	next, id := m.flow.ApplyVerify(msg.Result)
	m.flow = next
	m.countdown.Stop()
	return m, authenticatedCmd(m.identities, *id)
}

func (m Model) handleResendResult(msg ResendResultMsg) (Model, tea.Cmd) {
	// Same stale-result rule as verification: after Back there is no
	// code form to paint a banner or notice onto.
	if !m.flow.InTwoFactor() {
		return m, nil
	}
	m.resendPending = false

	if msg.Err != nil {
		m.errText = authflow.TwoFactorMessage(msg.Err)
		return m, nil
	}

	m.noticeSeq++
	m.notice = msg.Result.Message
	if m.notice == "" {
		m.notice = "Verification code sent."
	}
	return m, expireNoticeCmd(m.noticeSeq)
}
