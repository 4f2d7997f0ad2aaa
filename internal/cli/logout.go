// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// logout.go - Logout command implementation for keygate.
//
// Command: logout
// Short:   Clear the stored session
// Aliases: signout
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/keygate-tui/internal/identity"
)

// HandleLogout clears the stored identity. Logging out while not logged
// in is not an error; the end state is the same.
func HandleLogout(args Args) {
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

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !args.Quiet {
		fmt.Println("Logged out.")
	}
}

// closeStore closes stores that hold resources; the file-backed store
// does not.
func closeStore(store identity.Store) {
	if c, ok := store.(io.Closer); ok {
		_ = c.Close()
	}
}
