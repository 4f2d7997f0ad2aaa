// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for keygate.
//
// Configuration is TOML, read from ~/.keygate/config.toml (or the path in
// $KEYGATE_CONFIG), layered over built-in defaults, then over environment
// variable overrides:
//
//	KEYGATE_CONFIG            explicit config file path
//	KEYGATE_DATA_DIR          overrides storage.data_dir
//	KEYGATE_NO_LATENCY=1      disables the simulated backend delay
//	KEYGATE_SESSION_TTL_SECS  overrides backend.session_ttl_secs
//
// A missing config file is not an error; defaults apply. Global() caches
// the loaded configuration for the life of the process.
package config
