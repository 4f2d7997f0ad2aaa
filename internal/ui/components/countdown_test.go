// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/keygate-tui/internal/ui/styles"
)

// drain ticks the countdown n times using its current generation.
func drain(c *Countdown, n int) {
	for i := 0; i < n; i++ {
		c.Update(CountdownTickMsg{Gen: c.gen})
	}
}

// =============================================================================
// COUNTDOWN TESTS
// =============================================================================

func TestCountdown_CountsToZeroOnce(t *testing.T) {
	c := NewCountdown(3*time.Second, styles.NewTheme())

	if cmd := c.Start(); cmd == nil {
		t.Fatal("Start should schedule the first tick")
	}
	if c.Ready() {
		t.Error("countdown should not be ready while running")
	}

	drain(c, 2)
	if c.Ready() {
		t.Error("countdown should still be running with time left")
	}
	if c.Remaining() != time.Second {
		t.Errorf("Remaining = %v, want 1s", c.Remaining())
	}

	drain(c, 1)
	if !c.Ready() {
		t.Error("countdown should be ready at zero")
	}

	// Further ticks of the finished run change nothing
	drain(c, 5)
	if c.Remaining() != 0 || !c.Ready() {
		t.Error("extra ticks after zero must be no-ops")
	}
}

func TestCountdown_StaleGenerationIgnored(t *testing.T) {
	c := NewCountdown(60*time.Second, styles.NewTheme())
	c.Start()
	oldGen := c.gen

	// Restart bumps the generation; ticks from the first run are stale
	c.Start()
	c.Update(CountdownTickMsg{Gen: oldGen})
	if c.Remaining() != 60*time.Second {
		t.Errorf("stale tick decremented the countdown: %v", c.Remaining())
	}

	c.Update(CountdownTickMsg{Gen: c.gen})
	if c.Remaining() != 59*time.Second {
		t.Errorf("live tick ignored: %v", c.Remaining())
	}
}

func TestCountdown_StopInvalidatesTicks(t *testing.T) {
	c := NewCountdown(10*time.Second, styles.NewTheme())
	c.Start()
	gen := c.gen

	c.Stop()
	if !c.Ready() {
		t.Error("stopped countdown reports ready")
	}

	// A tick that was already in flight when the view unmounted
	c.Update(CountdownTickMsg{Gen: gen})
	if c.Remaining() != 10*time.Second {
		t.Error("tick after Stop mutated state")
	}
}

func TestCountdown_RestartAfterResend(t *testing.T) {
	c := NewCountdown(60*time.Second, styles.NewTheme())
	c.Start()
	drain(c, 60)
	if !c.Ready() {
		t.Fatal("countdown should finish after 60 ticks")
	}

	// Resend restarts the gate from the full interval
	c.Start()
	if c.Ready() {
		t.Error("restarted countdown should gate resend again")
	}
	if c.Remaining() != 60*time.Second {
		t.Errorf("Remaining = %v, want full interval", c.Remaining())
	}
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{60 * time.Second, "1:00"},
		{59 * time.Second, "0:59"},
		{9 * time.Second, "0:09"},
		{0, "0:00"},
		{-time.Second, "0:00"},
		{90 * time.Second, "1:30"},
	}

	for _, tc := range cases {
		if got := FormatCountdown(tc.d); got != tc.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestCountdown_LabelStableWidth(t *testing.T) {
	c := NewCountdown(60*time.Second, styles.NewTheme())
	c.Start()

	running := c.Label()
	c.Stop()
	ready := c.Label()

	if len(running) != len(ready) {
		t.Errorf("label width changes between states: %q vs %q", running, ready)
	}
	if !strings.Contains(ready, "Get new") {
		t.Errorf("ready label = %q", ready)
	}
}
