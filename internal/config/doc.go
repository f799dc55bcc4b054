// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for wordle's user
// configuration. The configuration is a YAML document named wordle.yaml in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/wordle.yaml or $HOME/.config/wordle.yaml
//   - macOS: $HOME/Library/Application Support/wordle.yaml
//   - Windows: %APPDATA%/wordle.yaml
//
// WORDLE_CFG_FILE overrides the location. A missing file is not an error for
// callers that supply defaults.
//
// Recognized keys:
//
//	dict: words.txt          # dictionary path or s3://bucket/key
//	limit: 100               # result capacity in words
//	output: text             # text, json, yaml or raw
//	columns: 1               # words per row in text output
//	cache:
//	  clean: 168             # purge cached dictionaries older than N hours
//	colors:
//	  title: "#f6be00"
//	  even: "#ffffff"
//	  odd: "#00c8f0"
//
// Any key may also be nested under a command name (e.g. match.limit) to
// apply to that command only.
package config
