// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the keygate TUI.
//
// The palette mirrors the web client it replaces - blue brand accents,
// rose error states - expressed as Lip Gloss AdaptiveColor pairs so light
// and dark terminals both read correctly. Theme bundles the prebuilt
// styles the auth views render with.
package styles
