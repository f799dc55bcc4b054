// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for wordle. The root command
// runs a match; explain, info, play and completion are subcommands. It wires
// flags, config-file defaults, validators and actions.
package command
