// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the keygate TUI.
package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/keygate-tui/internal/ui/styles"
	"github.com/jeranaias/keygate-tui/internal/util"
)

// =============================================================================
// RESEND COUNTDOWN - gates when a new code may be requested
// =============================================================================

// CountdownTickMsg is the once-per-second tick. Gen identifies which run of
// the countdown produced it: ticks from a stopped or restarted countdown
// carry a stale generation and are dropped, so a dismounted view can never
// be mutated by an orphaned timer callback.
type CountdownTickMsg struct {
	Gen int
}

// Countdown counts down from a fixed interval; at zero the resend action
// unlocks. Restarting bumps the generation, invalidating in-flight ticks.
type Countdown struct {
	interval  time.Duration
	remaining time.Duration
	gen       int
	running   bool
	theme     *styles.Theme
}

// NewCountdown creates a stopped countdown with the given interval.
func NewCountdown(interval time.Duration, theme *styles.Theme) *Countdown {
	return &Countdown{interval: interval, theme: theme}
}

// Start (re)starts the countdown from the full interval and returns the
// first tick command.
func (c *Countdown) Start() tea.Cmd {
	c.gen++
	c.remaining = c.interval
	c.running = true
	return c.tick()
}

// Stop halts the countdown. Any tick still in flight becomes stale.
func (c *Countdown) Stop() {
	c.gen++
	c.running = false
}

// Ready reports whether the countdown has finished and resend is allowed.
func (c *Countdown) Ready() bool {
	return !c.running
}

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Update consumes tick messages, returning the next tick command while
// time remains.
func (c *Countdown) Update(msg tea.Msg) (*Countdown, tea.Cmd) {
	t, ok := msg.(CountdownTickMsg)
	if !ok || t.Gen != c.gen || !c.running {
		return c, nil
	}

	c.remaining -= time.Second
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return c, nil
	}
	return c, c.tick()
}

// tick schedules the next CountdownTickMsg for the current generation.
func (c *Countdown) tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CountdownTickMsg{Gen: gen}
	})
}

// =============================================================================
// RENDERING
// =============================================================================

// buttonWidth keeps the resend button from resizing as its label flips
// between the countdown and "Get new".
const buttonWidth = 10

// Label returns the resend button text: the remaining time while counting,
// the action name once ready.
func (c *Countdown) Label() string {
	if c.Ready() {
		return padLabel("Get new")
	}
	return padLabel(FormatCountdown(c.remaining))
}

// padLabel centers text into the fixed button width, accounting for
// display width rather than byte length.
func padLabel(s string) string {
	w := runewidth.StringWidth(s)
	if w >= buttonWidth {
		return s
	}
	left := (buttonWidth - w) / 2
	right := buttonWidth - w - left
	return spaces(left) + s + spaces(right)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// FormatCountdown renders a duration as m:ss.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	mins := total / 60
	secs := total % 60
	out := util.IntToString(mins) + ":"
	if secs < 10 {
		out += "0"
	}
	return out + util.IntToString(secs)
}
