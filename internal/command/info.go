// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/wordle/internal/corpus"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/meta"
	"github.com/tfctl/wordle/internal/output"
)

// letterCount is one entry of a per-position frequency list.
type letterCount struct {
	Letter string `json:"letter" yaml:"letter"`
	Count  int    `json:"count" yaml:"count"`
}

// dictInfo is the structured form of the info report.
type dictInfo struct {
	Source    string          `json:"source" yaml:"source"`
	Bytes     int64           `json:"bytes" yaml:"bytes"`
	Records   int             `json:"records" yaml:"records"`
	Malformed int             `json:"malformed" yaml:"malformed"`
	Fetched   *time.Time      `json:"fetched,omitempty" yaml:"fetched,omitempty"`
	Top       [][]letterCount `json:"top" yaml:"top"`
}

func newDictInfo(h *corpus.Handle, s corpus.Stats, top int) dictInfo {
	info := dictInfo{
		Source:    h.Source,
		Bytes:     h.Size,
		Records:   s.Records,
		Malformed: s.Malformed,
		Top:       make([][]letterCount, corpus.WordLength),
	}
	if !h.Fetched.IsZero() {
		fetched := h.Fetched
		info.Fetched = &fetched
	}
	for p := 0; p < corpus.WordLength; p++ {
		info.Top[p] = []letterCount{}
		for _, lc := range s.Top(p, top) {
			info.Top[p] = append(info.Top[p], letterCount{Letter: string(lc.Letter), Count: lc.Count})
		}
	}
	return info
}

// infoCommandAction reports on the dictionary: where it came from, its size,
// how many records are usable and the most common letters at each position.
func infoCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if n := cmd.Args().Len(); n != 0 {
		return usageError("wordle info [flags]", n)
	}

	h, err := OpenCorpus(ctx, cmd)
	if err != nil {
		return err
	}
	defer h.Close()

	s, err := corpus.Inspect(h)
	if err != nil {
		return err
	}
	info := newDictInfo(h, s, cmd.Int("top"))

	w := stdout(cmd)
	opts := output.OptionsFromCommand(cmd)

	switch opts.Format {
	case "json":
		doc, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		fmt.Fprintln(w, string(doc))
		return nil
	case "yaml":
		doc, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(doc)
		return err
	case "raw":
		return fmt.Errorf("info does not support --output %s", opts.Format)
	}

	summary := [][]string{
		{"source", info.Source},
		{"size", humanize.Bytes(uint64(info.Bytes))},
		{"records", humanize.Comma(int64(info.Records))},
		{"malformed", humanize.Comma(int64(info.Malformed))},
	}
	if info.Fetched != nil {
		summary = append(summary, []string{"fetched", humanize.Time(*info.Fetched)})
	}
	output.TableWriter(nil, summary, opts, w)

	var rows [][]string
	for rank := 0; rank < cmd.Int("top"); rank++ {
		row := make([]string, corpus.WordLength)
		found := false
		for p := range row {
			if rank < len(info.Top[p]) {
				lc := info.Top[p][rank]
				row[p] = fmt.Sprintf("%s %s", lc.Letter, humanize.Comma(int64(lc.Count)))
				found = true
			}
		}
		if !found {
			break
		}
		rows = append(rows, row)
	}

	var headers []string
	if opts.Titles {
		for p := 0; p < corpus.WordLength; p++ {
			headers = append(headers, fmt.Sprintf("pos %d", p))
		}
	}
	if len(rows) > 0 {
		fmt.Fprintln(w)
	}
	output.TableWriter(headers, rows, opts, w)
	return nil
}

// infoCommandBuilder constructs the cli.Command for "info".
func infoCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "describe the dictionary",
		UsageText: "wordle info [flags]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewDictFlag(meta),
			&cli.IntFlag{
				Name:  "top",
				Usage: "letters listed per position",
				Value: 5,
				Validator: func(value int) error {
					return FlagValidators(value, NonNegativeValidator)
				},
			},
		}, NewOutputFlags(meta)...),
		Action: infoCommandAction,
	}
}
