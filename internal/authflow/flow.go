// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authflow is the client-side authentication state machine.
package authflow

import (
	"github.com/jeranaias/keygate-tui/internal/authapi"
	"github.com/jeranaias/keygate-tui/internal/identity"
)

// =============================================================================
// STEPS
// =============================================================================

// Step is the current position in the authentication flow.
type Step int

const (
	// StepLogin - credential entry.
	StepLogin Step = iota

	// StepTwoFactor - six-digit code entry against a pending session.
	StepTwoFactor
)

// String returns the step name for status display.
func (s Step) String() string {
	switch s {
	case StepLogin:
		return "login"
	case StepTwoFactor:
		return "twoFactor"
	default:
		return "unknown"
	}
}

// =============================================================================
// FLOW STATE
// =============================================================================

// State is the controller's working state. SessionID and Email are set iff
// Step is StepTwoFactor.
type State struct {
	Step      Step
	SessionID string
	Email     string
}

// NewState returns the initial state: the login step with no session.
func NewState() State {
	return State{Step: StepLogin}
}

// ApplyLogin folds a successful login result into the flow. For a direct
// (no-2FA) login it returns the terminal identity; for a 2FA login it
// advances to the TwoFactor step carrying the session and email.
//
// The identity's token comes from the backend in both cases. The observed
// client minted its own token on the direct path, an asymmetry its design
// notes called unintentional; here both paths consume the issued token.
func (s State) ApplyLogin(email string, res authapi.LoginResult) (State, *identity.Identity) {
	if res.RequiresTwoFactor && res.SessionID != "" {
		return State{
			Step:      StepTwoFactor,
			SessionID: res.SessionID,
			Email:     email,
		}, nil
	}
	return NewState(), &identity.Identity{Email: email, Token: res.Token}
}

// ApplyVerify folds a successful verification into the flow, producing the
// terminal identity. The flow state resets so a later logout re-enters at
// the login step with nothing carried over.
func (s State) ApplyVerify(res authapi.VerifyResult) (State, *identity.Identity) {
	return NewState(), &identity.Identity{Email: s.Email, Token: res.Token}
}

// Back returns to the login step, discarding the session reference. No
// backend cancellation is issued; the pending session expires on its own.
func (s State) Back() State {
	return NewState()
}

// InTwoFactor reports whether the flow is waiting on a code.
func (s State) InTwoFactor() bool {
	return s.Step == StepTwoFactor
}
