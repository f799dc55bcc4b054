// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/tfctl/wordle/internal/command"
	"github.com/tfctl/wordle/internal/constraint"
	"github.com/tfctl/wordle/internal/corpus"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// isDashPattern reports whether a is a required pattern that starts with '-'
// and would otherwise be parsed as a flag, e.g. "-ield" or "-----". No flag
// is exactly five characters of '-' and a-z, so there is no ambiguity.
func isDashPattern(a string) bool {
	if len(a) != corpus.WordLength || a[0] != constraint.Open {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != constraint.Open && !corpus.IsLetter(a[i]) {
			return false
		}
	}
	return true
}

// processPatternArgs moves a dash-leading required pattern, and the two query
// arguments after it, behind a "--" terminator so the flag parser leaves them
// alone. Flags that followed the query keep working because they now precede
// the terminator.
func processPatternArgs(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}

	for i := 1; i < len(args); i++ {
		if !isDashPattern(args[i]) {
			continue
		}

		end := min(i+3, len(args))
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, args[end:]...)
		out = append(out, "--")
		out = append(out, args[i:end]...)
		log.Debugf("args after pattern processing: args=%v", out)
		return out
	}
	return args
}

// exitCode maps an app error to the process exit status.
func exitCode(err error) int {
	var pe *constraint.ParseError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, command.ErrUsage), errors.As(err, &pe):
		return 1
	default:
		return 2
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitCode(err)
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	if !slices.Contains(args, "--help") && !slices.Contains(args, "-h") {
		args = processPatternArgs(args)
	}

	return initAndRunApp(args)
}
