// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/wordle/internal/config"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/result"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options controls rendering.
type Options struct {
	// Format is one of Formats. Empty means text.
	Format string
	// Columns is the number of words per row in text output. Values below 2
	// print one word per line.
	Columns int
	// Color enables colored table output.
	Color bool
	// Titles adds a header line to text output.
	Titles bool
	// Padding is the space between table columns.
	Padding int
}

// OptionsFromCommand reads Options from the standard output flags of cmd.
func OptionsFromCommand(cmd *cli.Command) Options {
	return Options{
		Format:  cmd.String("output"),
		Columns: cmd.Int("columns"),
		Color:   cmd.Bool("color"),
		Titles:  cmd.Bool("titles"),
		Padding: 1,
	}
}

// Document is the structured form of a match result.
type Document struct {
	Count int      `json:"count" yaml:"count"`
	Words []string `json:"words" yaml:"words"`
}

// NewDocument builds a Document from buf.
func NewDocument(buf *result.Buffer) Document {
	words := buf.Words()
	doc := Document{Count: len(words), Words: make([]string, 0, len(words))}
	for _, w := range words {
		doc.Words = append(doc.Words, w.String())
	}
	return doc
}

// Spit writes the contents of buf to w in the format selected by opts. If w
// is nil, os.Stdout is used.
func Spit(buf *result.Buffer, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	// Raw is the record buffer as is, NULs included.
	if opts.Format == "raw" {
		_, err := w.Write(buf.Bytes())
		return err
	}

	doc := NewDocument(buf)

	switch opts.Format {
	case "json":
		jsonOutput, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	case "", "text":
		return writeText(doc, opts, w)
	default:
		return fmt.Errorf("unknown output format: %s", opts.Format)
	}
}

func writeText(doc Document, opts Options, w io.Writer) error {
	if opts.Titles {
		header, _, _ := styles(opts)
		fmt.Fprintln(w, header.Render(fmt.Sprintf("%d %s", doc.Count, plural(doc.Count, "match", "matches"))))
	}

	if opts.Columns < 2 && !opts.Color {
		for _, word := range doc.Words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	}

	cols := max(opts.Columns, 1)
	var rows [][]string
	for i := 0; i < len(doc.Words); i += cols {
		row := make([]string, cols)
		copy(row, doc.Words[i:min(i+cols, len(doc.Words))])
		rows = append(rows, row)
	}
	TableWriter(nil, rows, opts, w)
	return nil
}

// TableWriter renders rows as a borderless table, alternating row colors when
// opts.Color is set. headers may be nil. Nothing is written for zero rows.
func TableWriter(headers []string, rows [][]string, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	headerStyle, evenRowStyle, oddRowStyle := styles(opts)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Rows(rows...)

	if len(headers) > 0 {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

func styles(opts Options) (header, even, odd lipgloss.Style) {
	header = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	even, odd = cell, cell

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")
		header = header.Foreground(headerColor)
		even = even.Foreground(evenColor)
		odd = odd.Foreground(oddColor)
	}
	return header, even, odd
}

// getColors returns configured color values for table rendering. Defaults are
// picked by terminal background so output stays readable on light and dark
// themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	log.Tracef("table colors: header=%v even=%v odd=%v", header, even, odd)
	return
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
