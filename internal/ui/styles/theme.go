// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the keygate TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// THEME
// =============================================================================

// Theme bundles the prebuilt styles the auth views render with. Building
// them once avoids re-deriving lipgloss styles on every frame.
type Theme struct {
	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style

	// Form chrome
	Card         lipgloss.Style
	FieldBox     lipgloss.Style
	FieldFocused lipgloss.Style
	FieldError   lipgloss.Style

	// Buttons
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonOutline  lipgloss.Style

	// Banners
	ErrorBanner   lipgloss.Style
	SuccessBanner lipgloss.Style
	InfoPanel     lipgloss.Style

	// Code cells
	Cell        lipgloss.Style
	CellFocused lipgloss.Style
	CellError   lipgloss.Style
}

// NewTheme builds the default keygate theme.
func NewTheme() *Theme {
	field := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	cell := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Foreground(TextPrimary).
		Bold(true).
		Width(3).
		Align(lipgloss.Center)

	button := lipgloss.NewStyle().
		Background(Blue).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 3)

	return &Theme{
		Title: lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(TextSecondary),
		Label: lipgloss.NewStyle().
			Foreground(TextSecondary),
		Hint: lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(1, 4),
		FieldBox:     field,
		FieldFocused: field.BorderForeground(FocusRing),
		FieldError:   field.BorderForeground(Rose),

		Button:         button,
		ButtonDisabled: button.Background(Overlay).Foreground(TextMuted),
		ButtonOutline: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Overlay).
			Foreground(TextSecondary).
			Padding(0, 2),

		ErrorBanner: lipgloss.NewStyle().
			Background(RoseDim).
			Foreground(Rose).
			Padding(0, 1),
		SuccessBanner: lipgloss.NewStyle().
			Foreground(Emerald).
			Padding(0, 1),
		InfoPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Cyan).
			Foreground(TextSecondary).
			Padding(0, 1),

		Cell:        cell,
		CellFocused: cell.BorderForeground(FocusRing),
		CellError:   cell.BorderForeground(Rose),
	}
}
