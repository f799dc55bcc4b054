// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"slices"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/wordle/internal/config"
	"github.com/tfctl/wordle/internal/meta"
)

// matchNamespace is the config namespace of the root match command.
const matchNamespace = "match"

// subcommands lists the subcommand names. None is five characters long, so a
// required pattern is never mistaken for one.
var subcommands = []string{"explain", "info", "play", "completion"}

// InitApp builds the root command for args. args[0] is the binary name.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg immediately following the binary is the subcommand, if it names
	// one, and also the namespace used for config lookups. Anything else is a
	// match query.
	ns := matchNamespace
	if len(args) > 1 && slices.Contains(subcommands, args[1]) {
		ns = args[1]
	}
	config.Config.Namespace = ns

	cfg, _ := config.Load()
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		ConfigFile:  config.Path(),
		Context:     ctx,
		Namespace:   ns,
		StartingDir: sd,
	}

	app := matchCommandBuilder(meta)
	app.Flags = append(app.Flags, &cli.BoolFlag{
		Name:        "version",
		Aliases:     []string{"v"},
		Usage:       "wordle version info",
		HideDefault: true,
	})

	app.Commands = append(app.Commands,
		explainCommandBuilder(meta),
		infoCommandBuilder(meta),
		playCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
