// keygate TUI - terminal login client against a simulated auth backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/keygate-tui/internal/authapi"
	"github.com/jeranaias/keygate-tui/internal/cli"
	"github.com/jeranaias/keygate-tui/internal/config"
	"github.com/jeranaias/keygate-tui/internal/identity"
	"github.com/jeranaias/keygate-tui/internal/pending"
	"github.com/jeranaias/keygate-tui/internal/ui/auth"
	"github.com/jeranaias/keygate-tui/internal/ui/dashboard"
	"github.com/jeranaias/keygate-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdLogout:
		cli.HandleLogout(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp(args)
	}
}

func runTUI(args cli.Args) {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "keygate: the TUI needs an interactive terminal (try 'keygate status')")
		os.Exit(1)
	}

	cfg, err := cli.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	dir, ids, err := cli.OpenStores(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := authapi.NewMockClient(dir, pending.NewMemoryRepository(), backendLatency(cfg))
	client.SetTTL(cfg.SessionTTL())

	root := newRootModel(client, ids, cfg)
	if _, err := tea.NewProgram(root, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// backendLatency maps the configured delays onto the mock backend.
func backendLatency(cfg *config.Config) authapi.Latency {
	if !cfg.Backend.SimulateLatency {
		return authapi.NoLatency()
	}
	return authapi.Latency{
		Login:   time.Duration(cfg.Backend.LoginDelayMs) * time.Millisecond,
		Verify:  time.Duration(cfg.Backend.VerifyDelayMs) * time.Millisecond,
		Resend:  time.Duration(cfg.Backend.ResendDelayMs) * time.Millisecond,
		Timeout: 3 * time.Second,
	}
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// activeView names which child model owns the screen.
type activeView int

const (
	viewAuth activeView = iota
	viewDashboard
)

// rootModel swaps between the authentication flow and the dashboard. A
// valid persisted identity skips the flow entirely.
type rootModel struct {
	view      activeView
	auth      auth.Model
	dashboard dashboard.Model

	client authapi.Client
	ids    identity.Store
	theme  *styles.Theme
	cfg    *config.Config

	width  int
	height int
}

func newRootModel(client authapi.Client, ids identity.Store, cfg *config.Config) rootModel {
	theme := styles.NewTheme()
	root := rootModel{
		view:   viewAuth,
		auth:   auth.New(client, ids, theme, cfg),
		client: client,
		ids:    ids,
		theme:  theme,
		cfg:    cfg,
	}

	if id, err := ids.Load(); err == nil && id.Valid() {
		root.view = viewDashboard
		root.dashboard = dashboard.New(id, ids, theme)
	} else if err != nil && !errors.Is(err, identity.ErrNotLoggedIn) {
		// A corrupt or unreadable store falls back to a fresh login.
		_ = ids.Clear()
	}
	return root
}

func (m rootModel) Init() tea.Cmd {
	if m.view == viewDashboard {
		return m.dashboard.Init()
	}
	return m.auth.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case auth.AuthenticatedMsg:
		m.view = viewDashboard
		m.dashboard = dashboard.New(msg.Identity, m.ids, m.theme)
		m.dashboard.SetSize(m.width, m.height)
		return m, m.dashboard.Init()

	case dashboard.LoggedOutMsg:
		m.view = viewAuth
		m.auth = auth.New(m.client, m.ids, m.theme, m.cfg)
		m.auth.SetSize(m.width, m.height)
		return m, m.auth.Init()
	}

	var cmd tea.Cmd
	switch m.view {
	case viewAuth:
		m.auth, cmd = m.auth.Update(msg)
	case viewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return m, cmd
}

func (m rootModel) View() string {
	if m.view == viewDashboard {
		return m.dashboard.View()
	}
	return m.auth.View()
}
