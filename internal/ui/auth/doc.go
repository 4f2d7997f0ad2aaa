// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the authentication view for the keygate TUI.
//
// The view renders whichever step the authflow state machine is in: the
// login form (email/password fields) or the two-factor form (six digit
// cells plus the resend countdown). Backend calls run as Bubble Tea
// commands so the event loop never blocks; while a call is in flight the
// submitting form is disabled, which prevents duplicate requests, and a
// spinner plays in the submit button.
//
// On terminal success the view persists the authenticated identity and
// emits AuthenticatedMsg for the root model to act on. The view never
// retries a failed call on its own; every failure becomes a banner and the
// form returns to an editable state.
package auth
