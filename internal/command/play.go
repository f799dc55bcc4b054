// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/wordle/internal/constraint"
	"github.com/tfctl/wordle/internal/corpus"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/matcher"
	"github.com/tfctl/wordle/internal/meta"
)

const (
	fieldRequired = iota
	fieldForbidden
	fieldPlacement
	fieldCount
)

var playLabels = [fieldCount]string{"required ", "forbidden", "placement"}

// playModel is the Bubble Tea model for the play command. Every edit re-runs
// the query against the same open corpus.
type playModel struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	corpus  corpus.Corpus
	limit   int
	columns int
	words   []corpus.Word
	err     error
}

func initialPlayModel(c corpus.Corpus, limit, columns int) playModel {
	m := playModel{corpus: c, limit: limit, columns: max(columns, 1)}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 32
		ti.Cursor.SetMode(cursor.CursorBlink)
		m.inputs[i] = ti
	}
	m.inputs[fieldRequired].CharLimit = corpus.WordLength
	m.inputs[fieldRequired].Placeholder = "-----"
	m.inputs[fieldForbidden].CharLimit = 26
	m.inputs[fieldPlacement].Placeholder = "e03"
	m.inputs[fieldRequired].Focus()

	m.refresh()
	return m
}

// requiredPattern pads a partially typed required pattern with open
// positions.
func requiredPattern(s string) string {
	if len(s) < corpus.WordLength {
		s += strings.Repeat(string(constraint.Open), corpus.WordLength-len(s))
	}
	return s
}

func (m *playModel) refresh() {
	set, err := constraint.Parse(
		requiredPattern(m.inputs[fieldRequired].Value()),
		m.inputs[fieldForbidden].Value(),
		m.inputs[fieldPlacement].Value(),
	)
	if err != nil {
		m.err = err
		m.words = nil
		return
	}

	m.words, m.err = matcher.MatchWords(m.corpus, set, m.limit)
	log.Tracef("play refresh: %s matched=%d", set, len(m.words))
}

func (m *playModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m playModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6aaa64")).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d7263d"))
	dimStyle := lipgloss.NewStyle().Faint(true)

	var lines []string
	for i, in := range m.inputs {
		lines = append(lines, labelStyle.Render(playLabels[i])+"  "+in.View())
	}
	lines = append(lines, "")

	switch {
	case m.err != nil:
		lines = append(lines, errStyle.Render(m.err.Error()))
	case len(m.words) == 0:
		lines = append(lines, dimStyle.Render("no matches"))
	default:
		summary := fmt.Sprintf("%d matches", len(m.words))
		if len(m.words) == m.limit {
			summary = fmt.Sprintf("first %d matches", len(m.words))
		}
		lines = append(lines, dimStyle.Render(summary))
		for i := 0; i < len(m.words); i += m.columns {
			var row []string
			for _, w := range m.words[i:min(i+m.columns, len(m.words))] {
				row = append(row, w.String())
			}
			lines = append(lines, strings.Join(row, "  "))
		}
	}

	lines = append(lines, "", dimStyle.Render("tab/shift+tab to move, esc to quit"))
	return strings.Join(lines, "\n")
}

// isInteractive reports whether stdin and stdout are both terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// playCommandAction opens the dictionary once and runs an interactive filter
// until the user quits.
func playCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if !isInteractive() {
		return errors.New("play requires an interactive terminal")
	}

	h, err := OpenCorpus(ctx, cmd)
	if err != nil {
		return err
	}
	defer h.Close()

	model := initialPlayModel(h, cmd.Int("limit"), cmd.Int("columns"))
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// playCommandBuilder constructs the cli.Command for "play".
func playCommandBuilder(meta meta.Meta) *cli.Command {
	columns := &cli.IntFlag{
		Name:  "columns",
		Usage: "words per row",
		Value: 8,
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(meta.Namespace, meta.ConfigFile, columns.Name, &columns.Sources)

	return &cli.Command{
		Name:      "play",
		Usage:     "filter interactively",
		UsageText: "wordle play [flags]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewDictFlag(meta),
			NewLimitFlag(meta),
			columns,
		},
		Action: playCommandAction,
	}
}
