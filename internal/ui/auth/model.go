// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/keygate-tui/internal/authapi"
	"github.com/jeranaias/keygate-tui/internal/authflow"
	"github.com/jeranaias/keygate-tui/internal/config"
	"github.com/jeranaias/keygate-tui/internal/identity"
	"github.com/jeranaias/keygate-tui/internal/ui/components"
	"github.com/jeranaias/keygate-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS TARGETS
// =============================================================================

// focusTarget identifies which login form element owns keyboard focus.
type focusTarget int

const (
	focusEmail focusTarget = iota
	focusPassword
	focusSubmit
)

// =============================================================================
// AUTH MODEL
// =============================================================================

// Model is the Bubble Tea model for the authentication flow.
type Model struct {
	// Flow state machine
	flow authflow.State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Backend
	client     authapi.Client
	identities identity.Store

	// Login form
	email    textinput.Model
	password textinput.Model
	focus    focusTarget

	// Two-factor form
	code      *components.CodeInput
	countdown *components.Countdown

	// In-flight request guards
	loginPending  bool
	verifyPending bool
	resendPending bool

	// Feedback
	errText   string // error banner, cleared on next submit or edit
	notice    string // transient success banner (resend confirmations)
	noticeSeq int

	// Help panel
	showHelp     bool
	helpsAllowed bool

	spinner spinner.Model
}

// New creates the authentication model. The identity store may be nil, in
// which case a successful login is not persisted across restarts.
func New(client authapi.Client, identities identity.Store, theme *styles.Theme, cfg *config.Config) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Prompt = ""
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint

	return Model{
		flow:         authflow.NewState(),
		theme:        theme,
		client:       client,
		identities:   identities,
		email:        email,
		password:     password,
		focus:        focusEmail,
		code:         components.NewCodeInput(theme),
		countdown:    components.NewCountdown(cfg.ResendInterval(), theme),
		helpsAllowed: cfg.UI.ShowTestCredentials,
	}
}

// Init returns the initial command for the view.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Step exposes the current flow step for the root model and tests.
func (m Model) Step() authflow.Step {
	return m.flow.Step
}

// Pending reports whether any backend request is in flight.
func (m Model) Pending() bool {
	return m.loginPending || m.verifyPending || m.resendPending
}

// SetSize records the terminal dimensions for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) setFocus(target focusTarget) {
	m.focus = target
	m.email.Blur()
	m.password.Blur()
	switch target {
	case focusEmail:
		m.email.Focus()
	case focusPassword:
		m.password.Focus()
	}
}

// resetToLogin drops all two-factor state and returns to an editable login
// form. The countdown is stopped so a tick from the abandoned step cannot
// fire into the login view.
func (m *Model) resetToLogin() {
	m.flow = m.flow.Back()
	m.countdown.Stop()
	m.code.Reset()
	m.verifyPending = false
	m.resendPending = false
	m.errText = ""
	m.notice = ""
	m.password.SetValue("")
	m.setFocus(focusEmail)
}
