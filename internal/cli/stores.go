// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stores.go - Storage wiring shared by the TUI and the print commands.
package cli

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/keygate-tui/internal/config"
	"github.com/jeranaias/keygate-tui/internal/directory"
	"github.com/jeranaias/keygate-tui/internal/identity"
)

// LoadConfig resolves the effective configuration: file, environment,
// then command-line flags, later layers winning.
func LoadConfig(args Args) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if args.DataDir != "" {
		cfg.Storage.DataDir = args.DataDir
	}
	if args.NoLatency {
		cfg.Backend.SimulateLatency = false
	}
	return cfg, nil
}

// OpenIdentityStore opens the identity store named by the configuration:
// a single-row SQLite table or a JSON file, both under the data directory.
func OpenIdentityStore(cfg *config.Config) (identity.Store, error) {
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if cfg.Storage.UseSQLite {
		return identity.OpenSQLiteStore(filepath.Join(dir, "keygate.db"))
	}
	return identity.NewFileStoreWithPath(filepath.Join(dir, "identity.json")), nil
}

// OpenStores opens the credential directory and the identity store for the
// TUI. With SQLite enabled both live in the same database and share one
// handle; otherwise the directory is the seeded in-memory store and the
// identity is a JSON file.
func OpenStores(cfg *config.Config) (directory.Store, identity.Store, error) {
	if !cfg.Storage.UseSQLite {
		dir, err := directory.NewMemoryStore(directory.DefaultSeeds())
		if err != nil {
			return nil, nil, err
		}
		ids, err := OpenIdentityStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return dir, ids, nil
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, "keygate.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	dir, err := directory.NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := dir.SeedAccounts(directory.DefaultSeeds()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seed accounts: %w", err)
	}
	ids, err := identity.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return dir, ids, nil
}
