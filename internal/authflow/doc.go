// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authflow is the client-side authentication state machine.
//
// The flow has two live steps - Login and TwoFactor - plus an implicit
// terminal state reached when an identity is issued. The package is pure:
// it owns no UI and performs no I/O, which keeps every transition
// table-testable. The Bubble Tea layer in internal/ui/auth drives it with
// backend results and renders whatever step it lands on.
//
// Transition table:
//
//	Login     + login ok, no 2FA   -> terminal (identity issued)
//	Login     + login ok, 2FA      -> TwoFactor (sessionID, email carried)
//	Login     + login failed       -> Login (error surfaced)
//	TwoFactor + verify ok          -> terminal (identity issued, session gone)
//	TwoFactor + verify failed      -> TwoFactor (error surfaced)
//	TwoFactor + back               -> Login (sessionID, email discarded)
//
// Back-navigation makes no backend call: the pending session simply ages
// out server-side.
//
// The package also owns client-side validation (nothing malformed reaches
// the backend contract) and the mapping from backend failures to the
// messages shown to the user.
package authflow
