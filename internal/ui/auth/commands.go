// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/keygate-tui/internal/authapi"
	"github.com/jeranaias/keygate-tui/internal/identity"
)

// noticeTTL is how long a transient success notice stays on screen.
const noticeTTL = 5 * time.Second

func loginCmd(client authapi.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Login(context.Background(), email, password)
		return LoginResultMsg{Email: email, Result: res, Err: err}
	}
}

func verifyCmd(client authapi.Client, sessionID, code string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.VerifyCode(context.Background(), sessionID, code)
		return VerifyResultMsg{Result: res, Err: err}
	}
}

func resendCmd(client authapi.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.ResendCode(context.Background(), sessionID)
		return ResendResultMsg{Result: res, Err: err}
	}
}

func expireNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{Seq: seq}
	})
}

// authenticatedCmd persists the identity and announces the terminal state.
// A persistence failure does not block the session; the identity simply
// will not survive a restart.
func authenticatedCmd(store identity.Store, id identity.Identity) tea.Cmd {
	return func() tea.Msg {
		if store != nil {
			_ = store.Save(id)
		}
		return AuthenticatedMsg{Identity: id}
	}
}
