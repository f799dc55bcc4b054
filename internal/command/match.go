// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/wordle/internal/constraint"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/matcher"
	"github.com/tfctl/wordle/internal/meta"
	"github.com/tfctl/wordle/internal/output"
	"github.com/tfctl/wordle/internal/result"
)

const matchUsage = "wordle [flags] <required> <forbidden> <placement>"

// queryArgs returns the three query arguments of cmd, or a usage error.
func queryArgs(cmd *cli.Command, usage string) (required, forbidden, placement string, err error) {
	args := cmd.Args().Slice()
	if len(args) != 3 {
		fmt.Fprintln(stderr(cmd), "usage: "+usage)
		return "", "", "", usageError(usage, len(args))
	}
	return args[0], args[1], args[2], nil
}

// matchCommandAction is the action of the root command. It parses the query,
// scans the dictionary and prints the matches.
func matchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	required, forbidden, placement, err := queryArgs(cmd, matchUsage)
	if err != nil {
		return err
	}

	// Parse before touching the dictionary so bad queries fail fast.
	set, err := constraint.Parse(required, forbidden, placement)
	if err != nil {
		return err
	}
	log.Debugf("query parsed: %s", set)

	h, err := OpenCorpus(ctx, cmd)
	if err != nil {
		return err
	}
	defer h.Close()

	buf := result.NewSlots(cmd.Int("limit"))
	if err := matcher.Match(h, set, buf); err != nil {
		return err
	}

	return output.Spit(buf, output.OptionsFromCommand(cmd), stdout(cmd))
}

// matchCommandBuilder constructs the root cli.Command, which runs a match.
func matchCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "wordle",
		Usage:     "filter a word list with Wordle clues",
		UsageText: matchUsage,
		Description: "required is five characters, a letter or '-' per position.\n" +
			"forbidden lists letters absent from the word.\n" +
			"placement is letters followed by positions (0-4) they are not at, e.g. e03r1.",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewDictFlag(meta),
			NewLimitFlag(meta),
		}, NewOutputFlags(meta)...),
		Action: matchCommandAction,
	}
}
