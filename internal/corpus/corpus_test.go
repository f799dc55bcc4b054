// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		want  []string
		count int
	}{
		{name: "nil", data: "", count: 0},
		{name: "single record", data: "crane\n", want: []string{"crane"}, count: 1},
		{name: "nul terminators", data: "crane\x00yield\x00", want: []string{"crane", "yield"}, count: 2},
		{name: "any terminator byte", data: "cranexyieldx", want: []string{"crane", "yield"}, count: 2},
		{name: "trailing partial record", data: "crane\nyiel", want: []string{"crane"}, count: 1},
		{name: "shorter than a record", data: "cran", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromBytes([]byte(tt.data))
			assert.Equal(t, tt.count, c.Len())

			words, err := Words(c)
			require.NoError(t, err)
			got := make([]string, 0, len(words))
			for _, w := range words {
				got = append(got, w.String())
			}
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := FromBytes([]byte("crane\n"))

	for _, i := range []int{-1, 1, 100} {
		_, err := c.At(i)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", i)
	}
}

func TestFromWords(t *testing.T) {
	c, err := FromWords("shine", "spine", "swine")
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	w, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, "spine", w.String())

	_, err = FromWords("shine", "SPINE")
	assert.Error(t, err)
}

func TestFromWordsEmpty(t *testing.T) {
	c, err := FromWords()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
