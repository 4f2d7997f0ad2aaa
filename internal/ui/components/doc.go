// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the keygate TUI.
//
// Components here are self-contained Bubble Tea widgets the auth views
// compose:
//
//   - CodeInput: six single-digit cells with auto-advance, backspace
//     retreat, atomic six-digit paste, and auto-submit on completion
//   - Countdown: the resend gate, a generation-counted once-per-second
//     timer that cannot leak ticks into a dismounted view
//   - Alert helpers: error/success banners and the test credential panels
package components
