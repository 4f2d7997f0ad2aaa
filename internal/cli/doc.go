// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing and non-interactive command
// handlers for keygate. The default command starts the TUI; the rest
// (status, logout, version, help) print and exit without entering the
// Bubble Tea program.
package cli
