// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/keygate-tui/internal/identity"
	"github.com/jeranaias/keygate-tui/internal/ui/styles"
)

type memStore struct {
	saved *identity.Identity
}

func (s *memStore) Load() (identity.Identity, error) {
	if s.saved == nil {
		return identity.Identity{}, identity.ErrNotLoggedIn
	}
	return *s.saved, nil
}

func (s *memStore) Save(id identity.Identity) error {
	s.saved = &id
	return nil
}

func (s *memStore) Clear() error {
	s.saved = nil
	return nil
}

func TestDashboard_MasksToken(t *testing.T) {
	who := identity.Identity{Email: "user@example.com", Token: "token_1712000000000_abcd1234"}
	m := New(who, nil, styles.NewTheme())

	view := m.View()
	if strings.Contains(view, who.Token) {
		t.Error("full token must never be rendered")
	}
	if !strings.Contains(view, "user@example.com") {
		t.Error("email should be shown")
	}
}

func TestDashboard_LogoutClearsStore(t *testing.T) {
	who := identity.Identity{Email: "user@example.com", Token: "token_x"}
	store := &memStore{saved: &who}
	m := New(who, store, styles.NewTheme())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("logout should produce a command")
	}
	if _, ok := cmd().(LoggedOutMsg); !ok {
		t.Fatal("expected LoggedOutMsg")
	}
	if store.saved != nil {
		t.Error("persisted identity should be cleared before announcing")
	}
}

func TestDashboard_LogoutWithoutStore(t *testing.T) {
	m := New(identity.Identity{Email: "a@b.com", Token: "t"}, nil, styles.NewTheme())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if cmd == nil {
		t.Fatal("logout should produce a command")
	}
	if _, ok := cmd().(LoggedOutMsg); !ok {
		t.Fatal("expected LoggedOutMsg")
	}
}
