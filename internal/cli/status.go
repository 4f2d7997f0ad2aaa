// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command implementation for keygate.
//
// Command: status
// Short:   Show who is signed in
// Aliases: s
//
// Examples:
//   keygate status            Human-readable status
//   keygate status --json     Machine-readable status
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/keygate-tui/internal/identity"
	"github.com/jeranaias/keygate-tui/internal/util"
)

type statusOutput struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
	Token    string `json:"token,omitempty"`
}

// HandleStatus prints the stored session, if any. The token is always
// masked; status output may end up in shell history or logs.
func HandleStatus(args Args) {
	cfg, err := LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := OpenIdentityStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	id, err := store.Load()
	switch {
	case errors.Is(err, identity.ErrNotLoggedIn):
		printStatus(args, statusOutput{LoggedIn: false})
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	default:
		printStatus(args, statusOutput{
			LoggedIn: true,
			Email:    id.Email,
			Token:    util.MaskToken(id.Token),
		})
	}
}

func printStatus(args Args, out statusOutput) {
	if args.JSON {
		data, _ := json.Marshal(out)
		fmt.Println(string(data))
		return
	}
	if !out.LoggedIn {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("Signed in as %s\n", out.Email)
	fmt.Printf("Token: %s\n", out.Token)
}
