// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/wordle/internal/corpus"
)

func newPlayModel(t *testing.T, limit int) playModel {
	t.Helper()
	c, err := corpus.FromWords("braai", "brace", "bread", "crane")
	require.NoError(t, err)
	return initialPlayModel(c, limit, 4)
}

func typeKeys(m playModel, s string) playModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(playModel)
	}
	return m
}

func press(m playModel, k tea.KeyType) (playModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(playModel), cmd
}

func words(m playModel) []string {
	out := make([]string, 0, len(m.words))
	for _, w := range m.words {
		out = append(out, w.String())
	}
	return out
}

func TestPlayModelRefinesAsYouType(t *testing.T) {
	m := newPlayModel(t, 10)
	assert.Equal(t, []string{"braai", "brace", "bread", "crane"}, words(m))

	m = typeKeys(m, "br")
	assert.Equal(t, "br", m.inputs[fieldRequired].Value())
	assert.Equal(t, []string{"braai", "brace", "bread"}, words(m))

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, fieldForbidden, m.focus)
	m = typeKeys(m, "c")
	assert.Equal(t, []string{"braai", "bread"}, words(m))

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, fieldPlacement, m.focus)
	m = typeKeys(m, "e")
	assert.Equal(t, []string{"bread"}, words(m))
	assert.Contains(t, m.View(), "bread")
}

func TestPlayModelShowsParseErrors(t *testing.T) {
	m := newPlayModel(t, 10)

	m, _ = press(m, tea.KeyShiftTab)
	assert.Equal(t, fieldPlacement, m.focus)

	m = typeKeys(m, "e9")
	require.Error(t, m.err)
	assert.Empty(t, m.words)
	assert.Contains(t, m.View(), "placement position out of range")

	m, _ = press(m, tea.KeyBackspace)
	assert.NoError(t, m.err)
	assert.Equal(t, []string{"brace", "bread", "crane"}, words(m))
}

func TestPlayModelLimit(t *testing.T) {
	m := newPlayModel(t, 2)
	assert.Equal(t, []string{"braai", "brace"}, words(m))
	assert.Contains(t, m.View(), "first 2 matches")
}

func TestPlayModelNoMatches(t *testing.T) {
	m := newPlayModel(t, 10)
	m = typeKeys(m, "zz")
	assert.Empty(t, m.words)
	assert.Contains(t, m.View(), "no matches")
}

func TestPlayModelQuit(t *testing.T) {
	m := newPlayModel(t, 10)

	_, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRequiredPattern(t *testing.T) {
	assert.Equal(t, "-----", requiredPattern(""))
	assert.Equal(t, "br---", requiredPattern("br"))
	assert.Equal(t, "bread", requiredPattern("bread"))
}
