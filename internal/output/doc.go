// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders match results and word tables in the formats
// selected on the command line: plain text, a colored table grid, JSON, YAML
// or the raw record buffer.
package output
