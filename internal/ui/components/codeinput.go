// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the keygate TUI.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/keygate-tui/internal/ui/styles"
)

// =============================================================================
// CODE INPUT COMPONENT - Six single-digit cells with auto-advance
// =============================================================================

// CodeLength is the number of digit cells.
const CodeLength = 6

// CodeCompleteMsg is emitted when all six cells are filled, either by
// typing the last digit or by pasting a full code. The receiving view
// treats it as an auto-submit.
type CodeCompleteMsg struct {
	Code string
}

// CodeInput is the six-cell verification code field.
//
// Behavior matches the form it replaces: typing a digit fills the focused
// cell and advances, backspace over an empty cell retreats and clears the
// previous one, and a paste containing exactly six digits fills every cell
// atomically. Cells are not cleared when verification fails; the user edits
// in place.
type CodeInput struct {
	digits  [CodeLength]rune // 0 = empty
	focus   int
	focused bool
	hasErr  bool
	theme   *styles.Theme
}

// NewCodeInput creates an empty code input.
func NewCodeInput(theme *styles.Theme) *CodeInput {
	return &CodeInput{theme: theme, focused: true}
}

// Focus gives the component keyboard focus.
func (c *CodeInput) Focus() {
	c.focused = true
}

// Blur removes keyboard focus.
func (c *CodeInput) Blur() {
	c.focused = false
}

// SetError toggles the error border on every cell.
func (c *CodeInput) SetError(hasErr bool) {
	c.hasErr = hasErr
}

// Reset clears all cells and returns focus to the first.
func (c *CodeInput) Reset() {
	c.digits = [CodeLength]rune{}
	c.focus = 0
	c.hasErr = false
}

// Value returns the entered digits as a string.
func (c *CodeInput) Value() string {
	var sb strings.Builder
	for _, d := range c.digits {
		if d != 0 {
			sb.WriteRune(d)
		}
	}
	return sb.String()
}

// Complete reports whether every cell holds a digit.
func (c *CodeInput) Complete() bool {
	for _, d := range c.digits {
		if d == 0 {
			return false
		}
	}
	return true
}

// Update handles key input. When the final cell fills it emits
// CodeCompleteMsg as a command.
func (c *CodeInput) Update(msg tea.Msg) (*CodeInput, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.Type {
	case tea.KeyBackspace:
		c.backspace()
		return c, nil

	case tea.KeyLeft:
		if c.focus > 0 {
			c.focus--
		}
		return c, nil

	case tea.KeyRight:
		if c.focus < CodeLength-1 {
			c.focus++
		}
		return c, nil

	case tea.KeyRunes:
		// A multi-rune key event is a paste; a single rune is a keystroke.
		if len(key.Runes) > 1 {
			return c, c.paste(string(key.Runes))
		}
		if len(key.Runes) == 1 {
			return c, c.typeRune(key.Runes[0])
		}
	}

	return c, nil
}

// typeRune handles a single keystroke. Non-digits are ignored.
func (c *CodeInput) typeRune(r rune) tea.Cmd {
	if r < '0' || r > '9' {
		return nil
	}
	c.digits[c.focus] = r
	c.hasErr = false
	if c.focus < CodeLength-1 {
		c.focus++
	}
	if c.Complete() {
		code := c.Value()
		return func() tea.Msg { return CodeCompleteMsg{Code: code} }
	}
	return nil
}

// backspace clears the focused cell, or retreats and clears the previous
// cell when the focused one is already empty.
func (c *CodeInput) backspace() {
	if c.digits[c.focus] != 0 {
		c.digits[c.focus] = 0
		return
	}
	if c.focus > 0 {
		c.focus--
		c.digits[c.focus] = 0
	}
}

// paste fills all cells from pasted text if it yields exactly six digits.
// Anything else is dropped; cell-by-cell entry is not disturbed.
func (c *CodeInput) paste(text string) tea.Cmd {
	var digits []rune
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
		if len(digits) > CodeLength {
			return nil
		}
	}
	if len(digits) != CodeLength {
		return nil
	}

	copy(c.digits[:], digits)
	c.focus = CodeLength - 1
	c.hasErr = false
	code := c.Value()
	return func() tea.Msg { return CodeCompleteMsg{Code: code} }
}

// View renders the six cells in a row.
func (c *CodeInput) View() string {
	cells := make([]string, 0, CodeLength)
	for i, d := range c.digits {
		style := c.theme.Cell
		switch {
		case c.hasErr:
			style = c.theme.CellError
		case c.focused && i == c.focus:
			style = c.theme.CellFocused
		}

		content := " "
		if d != 0 {
			content = string(d)
		}
		cells = append(cells, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
