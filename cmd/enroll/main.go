// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides keygate-enroll, a companion tool that provisions
// the test account directory. It seeds the SQLite credential store and
// prints an otpauth:// provisioning URI for every account with two-factor
// enabled, ready to scan into an authenticator app.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pquerna/otp/totp"

	"github.com/jeranaias/keygate-tui/internal/config"
	"github.com/jeranaias/keygate-tui/internal/directory"
)

const version = "0.1.0"

func main() {
	issuer := "Keygate"
	dataDir := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("keygate-enroll v%s\n", version)
			return
		case "--issuer":
			if i+1 < len(args) {
				i++
				issuer = args[i]
			}
		case "--data-dir":
			if i+1 < len(args) {
				i++
				dataDir = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--issuer=") {
				issuer = strings.TrimPrefix(arg, "--issuer=")
			} else if strings.HasPrefix(arg, "--data-dir=") {
				dataDir = strings.TrimPrefix(arg, "--data-dir=")
			} else {
				fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", arg)
				os.Exit(1)
			}
		}
	}

	if err := run(issuer, dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(issuer, dataDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}

	store, err := directory.OpenSQLStore(filepath.Join(dir, "keygate.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	seeds := directory.DefaultSeeds()
	if err := store.SeedAccounts(seeds); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	fmt.Printf("Seeded %d accounts into %s\n\n", len(seeds), filepath.Join(dir, "keygate.db"))

	for _, seed := range seeds {
		if !seed.RequiresTwoFactor {
			continue
		}
		key, err := totp.Generate(totp.GenerateOpts{
			Issuer:      issuer,
			AccountName: seed.Email,
		})
		if err != nil {
			return fmt.Errorf("generate key for %s: %w", seed.Email, err)
		}
		fmt.Printf("%s\n  %s\n\n", seed.Email, key.URL())
	}
	return nil
}

func printHelp() {
	fmt.Println(`keygate-enroll v` + version + `

Seeds the keygate credential directory and prints TOTP provisioning
URIs for the two-factor test accounts.

Usage:
  keygate-enroll [flags]

Flags:
  --data-dir <path>   Data directory (default: config value)
  --issuer <name>     Issuer name embedded in the URIs (default: Keygate)
  --version, -v       Show version
  --help, -h          Show this help`)
}
