// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"github.com/jeranaias/keygate-tui/internal/authapi"
	"github.com/jeranaias/keygate-tui/internal/identity"
)

// LoginResultMsg carries the outcome of a login request.
type LoginResultMsg struct {
	Email  string
	Result authapi.LoginResult
	Err    error
}

// VerifyResultMsg carries the outcome of a code verification request.
type VerifyResultMsg struct {
	Result authapi.VerifyResult
	Err    error
}

// ResendResultMsg carries the outcome of a resend-code request.
type ResendResultMsg struct {
	Result authapi.ResendResult
	Err    error
}

// AuthenticatedMsg is emitted once the flow reaches a terminal success.
// The identity has already been persisted by the time this fires; the root
// model only needs to switch views.
type AuthenticatedMsg struct {
	Identity identity.Identity
}

// noticeExpiredMsg clears a transient success notice. Seq guards against a
// stale expiry firing after a newer notice replaced the old one.
type noticeExpiredMsg struct {
	Seq int
}
