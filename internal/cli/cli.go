// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for keygate.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdStatus
	CmdLogout
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet     bool
	JSON      bool
	NoLatency bool   // Skip simulated backend latency
	DataDir   string // Override the data directory

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `keygate - terminal login client

Keygate signs you in against a simulated authentication backend:
email and password first, a six-digit code when the account has
two-factor enabled. Sessions persist across restarts until logout.

Usage:
  keygate                  Start the login TUI (default)
  keygate status, s        Show who is signed in
  keygate logout           Clear the stored session
  keygate version, -v      Show version information
  keygate help, -h         Show this help

Flags:
  --data-dir <path>        Override the data directory
  --no-latency             Skip simulated backend latency
  --json                   Machine-readable output (status)
  --quiet, -q              Suppress non-essential output

Environment:
  KEYGATE_CONFIG           Path to the config file
  KEYGATE_DATA_DIR         Data directory override
  KEYGATE_NO_LATENCY       Set to 1 to skip simulated latency
`

// Parse reads os.Args and returns the command to run plus parsed flags.
func Parse() (Command, Args) {
	raw := os.Args[1:]
	remaining, args := parseGlobalFlags(raw)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, args
	case "status", "s":
		return CmdStatus, args
	case "logout", "signout":
		return CmdLogout, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags strips global flags from the argument list, returning
// the remaining positional arguments.
func parseGlobalFlags(raw []string) ([]string, Args) {
	var args Args
	var remaining []string

	i := 0
	for i < len(raw) {
		switch arg := raw[i]; arg {
		case "--quiet", "-q":
			args.Quiet = true
		case "--json":
			args.JSON = true
		case "--no-latency":
			args.NoLatency = true
		case "--data-dir":
			if i+1 < len(raw) {
				i++
				args.DataDir = raw[i]
			}
		default:
			if strings.HasPrefix(arg, "--data-dir=") {
				args.DataDir = strings.TrimPrefix(arg, "--data-dir=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}
	return remaining, args
}

// HandleVersion prints version information.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf("{\"version\":%q,\"commit\":%q,\"built\":%q}\n", Version, GitCommit, BuildDate)
		return
	}
	fmt.Printf("keygate %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp(Args) {
	fmt.Print(usageText)
}
