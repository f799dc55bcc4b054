// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/wordle/internal/constraint"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/meta"
	"github.com/tfctl/wordle/internal/output"
)

const explainUsage = "wordle explain [flags] <required> <forbidden> <placement>"

// explanation is the structured form of a parsed query.
type explanation struct {
	Required  string   `json:"required" yaml:"required"`
	Forbidden string   `json:"forbidden" yaml:"forbidden"`
	Placement []string `json:"placement" yaml:"placement"`
	Warnings  []string `json:"warnings" yaml:"warnings"`
}

func explain(set *constraint.Set) explanation {
	e := explanation{
		Required:  set.Required.String(),
		Forbidden: set.Forbidden.String(),
		Placement: []string{},
		Warnings:  []string{},
	}
	for _, r := range set.Placements {
		e.Placement = append(e.Placement, r.String())
	}
	for _, c := range set.Conflicts() {
		e.Warnings = append(e.Warnings,
			fmt.Sprintf("%c is both required and forbidden; it is only allowed where pinned", c))
	}
	for _, r := range set.Unsatisfiable() {
		e.Warnings = append(e.Warnings,
			fmt.Sprintf("placement %s cannot be satisfied; no word will match", r))
	}
	return e
}

// describeRule renders a placement rule as prose.
func describeRule(r constraint.PlacementRule) string {
	pos := r.Positions()
	if len(pos) == 0 {
		return fmt.Sprintf("%c somewhere", r.Letter)
	}
	var ps []string
	for _, p := range pos {
		ps = append(ps, fmt.Sprint(p))
	}
	return fmt.Sprintf("%c, not at %s", r.Letter, strings.Join(ps, ","))
}

// explainCommandAction parses a query without running it and reports how it
// was understood, along with any clue combinations that look like mistakes.
func explainCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	required, forbidden, placement, err := queryArgs(cmd, explainUsage)
	if err != nil {
		return err
	}

	set, err := constraint.Parse(required, forbidden, placement)
	if err != nil {
		return err
	}

	e := explain(set)
	w := stdout(cmd)
	opts := output.OptionsFromCommand(cmd)

	switch opts.Format {
	case "json":
		doc, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		fmt.Fprintln(w, string(doc))
		return nil
	case "yaml":
		doc, err := yaml.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(doc)
		return err
	case "raw":
		return fmt.Errorf("explain does not support --output %s", opts.Format)
	}

	rows := [][]string{
		{"required", e.Required},
		{"forbidden", e.Forbidden},
	}
	for _, r := range set.Placements {
		rows = append(rows, []string{"placement", describeRule(r)})
	}

	var headers []string
	if opts.Titles {
		headers = []string{"clue", "value"}
	}
	output.TableWriter(headers, rows, opts, w)

	for _, warning := range e.Warnings {
		fmt.Fprintln(stderr(cmd), "warning: "+warning)
	}
	return nil
}

// explainCommandBuilder constructs the cli.Command for "explain".
func explainCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "show how a query is parsed",
		UsageText: explainUsage,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewOutputFlags(meta),
		Action: explainCommandAction,
	}
}
