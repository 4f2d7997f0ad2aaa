// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard renders the authenticated landing view. It shows who
// is signed in, the masked session token, and offers logout. Logout clears
// the persisted identity first and then announces LoggedOutMsg so the root
// model can swap the authentication view back in.
package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/keygate-tui/internal/identity"
	"github.com/jeranaias/keygate-tui/internal/ui/styles"
	"github.com/jeranaias/keygate-tui/internal/util"
)

// LoggedOutMsg tells the root model the identity has been cleared.
type LoggedOutMsg struct{}

// Model is the authenticated view.
type Model struct {
	who        identity.Identity
	identities identity.Store
	theme      *styles.Theme

	width  int
	height int
}

// New creates the dashboard for an authenticated identity. The store may
// be nil when persistence is disabled.
func New(who identity.Identity, identities identity.Store, theme *styles.Theme) Model {
	return Model{who: who, identities: identities, theme: theme}
}

// Init returns the initial command for the view.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal dimensions for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Identity exposes the signed-in identity for the root model and tests.
func (m Model) Identity() identity.Identity {
	return m.who
}

// Update advances the view in response to a message.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlL || (msg.Type == tea.KeyRunes && string(msg.Runes) == "q") {
			return m, m.logout()
		}
	}
	return m, nil
}

// logout clears the stored identity before announcing. A clear failure is
// not fatal; the in-memory session ends either way.
func (m Model) logout() tea.Cmd {
	store := m.identities
	return func() tea.Msg {
		if store != nil {
			_ = store.Clear()
		}
		return LoggedOutMsg{}
	}
}

// View renders the dashboard centered in the terminal.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Welcome"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("You are signed in"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Account"))
	b.WriteString("\n")
	b.WriteString(m.who.Email)
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Session token"))
	b.WriteString("\n")
	b.WriteString(util.MaskToken(m.who.Token))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Hint.Render("q: sign out • ctrl+c: quit"))

	card := m.theme.Card.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
