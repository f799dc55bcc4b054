// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package result

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/wordle/internal/corpus"
)

func TestNthWordInvalidArgs(t *testing.T) {
	buf5 := make([]byte, 5)
	buf6 := []byte("crane\x00")
	buf12 := []byte("aahed\x00aalii\x00")
	buf100 := make([]byte, 100)

	tests := []struct {
		name string
		buf  []byte
		size int
		n    int
	}{
		{name: "nil buffer", buf: nil, size: 1, n: 1},
		{name: "zero size", buf: buf5, size: 0, n: 0},
		{name: "too small", buf: buf5, size: 5, n: 0},
		{name: "zero size with room", buf: buf6, size: 0, n: 0},
		{name: "negative size", buf: buf6, size: -6, n: 0},
		{name: "negative n", buf: buf6, size: 6, n: -1},
		{name: "n far too big", buf: buf100, size: 100, n: 101},
		{name: "last partial slot", buf: buf100, size: 100, n: 16},
		{name: "size beyond buffer", buf: buf6, size: 12, n: 1},
		{name: "overflowing n", buf: buf6, size: 6, n: math.MaxInt / corpus.RecordWidth},
		{name: "n wrapping to small end", buf: buf12, size: 12, n: math.MaxInt/3 + 1},
		{name: "n wrapping to negative offset", buf: buf12, size: 12, n: math.MaxInt / 3},
		{name: "max n", buf: buf12, size: 12, n: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := NthWord(tt.buf, tt.size, tt.n)
			assert.False(t, ok)
			assert.Equal(t, corpus.Word{}, w)
		})
	}
}

func TestNthWord(t *testing.T) {
	buf := []byte("braai\x00brace\x00")

	w, ok := NthWord(buf, 6, 0)
	require.True(t, ok, "exactly one record fits")
	assert.Equal(t, "braai", w.String())

	w, ok = NthWord(buf, len(buf), 1)
	require.True(t, ok)
	assert.Equal(t, "brace", w.String())

	_, ok = NthWord(buf, len(buf), 2)
	assert.False(t, ok)

	_, ok = NthWord(buf, 6, 1)
	assert.False(t, ok, "size bounds the lookup, not len(buf)")
}

func TestNthWordBoundary(t *testing.T) {
	buf := make([]byte, 100)
	for n := 0; n < 20; n++ {
		_, ok := NthWord(buf, 100, n)
		assert.Equal(t, (n+1)*corpus.RecordWidth <= 100, ok, "slot %d", n)
	}
}

func TestBufferAppend(t *testing.T) {
	b := New(12)
	assert.Equal(t, 12, b.Cap())
	assert.False(t, b.Full())

	assert.True(t, b.Append(corpus.MustParseWord("braai")))
	assert.True(t, b.Append(corpus.MustParseWord("brace")))
	assert.True(t, b.Full())
	assert.False(t, b.Append(corpus.MustParseWord("brach")))

	assert.Equal(t, 12, b.Len())
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, []byte("braai\x00brace\x00"), b.Bytes())
}

func TestBufferPartialCapacity(t *testing.T) {
	// 33 bytes hold five records; the three left over are never used.
	b := New(33)
	for _, s := range []string{"bield", "field", "sield", "wield", "yield", "zield"} {
		b.Append(corpus.MustParseWord(s))
	}
	assert.Equal(t, 30, b.Len())
	assert.True(t, b.Full())

	w, ok := b.Nth(4)
	require.True(t, ok)
	assert.Equal(t, "yield", w.String())
	_, ok = b.Nth(5)
	assert.False(t, ok)
}

func TestBufferZeroCapacity(t *testing.T) {
	for _, b := range []*Buffer{New(0), New(-3), NewSlots(0), NewSlots(-1), New(5)} {
		assert.True(t, b.Full())
		assert.False(t, b.Append(corpus.MustParseWord("crane")))
		assert.Empty(t, b.Words())
		_, ok := b.Nth(0)
		assert.False(t, ok)
	}
}

func TestBufferWordsAndReset(t *testing.T) {
	b := NewSlots(3)
	assert.Equal(t, 18, b.Cap())

	b.Append(corpus.MustParseWord("shine"))
	b.Append(corpus.MustParseWord("spine"))

	words := b.Words()
	require.Len(t, words, 2)
	assert.Equal(t, "shine", words[0].String())
	assert.Equal(t, "spine", words[1].String())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 18, b.Cap())
	assert.Empty(t, b.Words())
	assert.Len(t, words, 2, "Words returns a copy")
}

func TestNewSlotsLarge(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantCap int
	}{
		{name: "billion", n: 1_000_000_000, wantCap: 1_000_000_000 * corpus.RecordWidth},
		{name: "beyond int range", n: 1 << 60, wantCap: MaxSlots * corpus.RecordWidth},
		{name: "max int", n: math.MaxInt, wantCap: MaxSlots * corpus.RecordWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b *Buffer
			require.NotPanics(t, func() { b = NewSlots(tt.n) })
			assert.Equal(t, tt.wantCap, b.Cap())
			assert.Positive(t, b.Cap())
			assert.LessOrEqual(t, cap(b.data), preallocSlots*corpus.RecordWidth)

			assert.False(t, b.Full())
			assert.True(t, b.Append(corpus.MustParseWord("crane")))
			w, ok := b.Nth(0)
			require.True(t, ok)
			assert.Equal(t, "crane", w.String())
		})
	}
}

func TestBufferGrowsPastPrealloc(t *testing.T) {
	n := preallocSlots + 10
	b := NewSlots(n)
	for i := 0; i < n+5; i++ {
		b.Append(corpus.MustParseWord("crane"))
	}
	assert.Equal(t, n, b.Count())
	assert.True(t, b.Full())
}
