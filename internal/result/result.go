// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package result holds matched words in the fixed-width wire layout shared
// with the dictionary: each record is the word's letters followed by a NUL,
// concatenated in match order.
package result

import (
	"math"

	"github.com/tfctl/wordle/internal/corpus"
)

// Terminator ends every record in a Buffer.
const Terminator = 0

// MaxSlots is the largest word count NewSlots accepts without overflowing
// the byte capacity.
const MaxSlots = math.MaxInt / corpus.RecordWidth

// preallocSlots bounds the memory reserved up front; data grows by append
// beyond it, up to the capacity.
const preallocSlots = 256

// Buffer is a fixed-capacity record buffer. It never grows past the capacity
// given to New, and only whole records are ever stored.
type Buffer struct {
	data     []byte
	capacity int
}

// New returns a Buffer holding at most capacity bytes. Negative capacities
// are treated as zero. Capacity is a limit, not an allocation.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		data:     make([]byte, 0, min(capacity, preallocSlots*corpus.RecordWidth)),
		capacity: capacity,
	}
}

// NewSlots returns a Buffer with room for exactly n words. n is clamped to
// [0, MaxSlots].
func NewSlots(n int) *Buffer {
	n = max(0, min(n, MaxSlots))
	return New(n * corpus.RecordWidth)
}

// Cap returns the capacity in bytes.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Len returns the number of bytes used.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Count returns the number of words stored.
func (b *Buffer) Count() int {
	return len(b.data) / corpus.RecordWidth
}

// Full reports whether another record would overflow the buffer.
func (b *Buffer) Full() bool {
	return b.capacity-len(b.data) < corpus.RecordWidth
}

// Append stores w and reports whether there was room for it.
func (b *Buffer) Append(w corpus.Word) bool {
	if b.Full() {
		return false
	}
	b.data = append(b.data, w[:]...)
	b.data = append(b.data, Terminator)
	return true
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Bytes returns the used portion of the buffer in wire layout. The slice
// aliases the buffer and is only valid until the next Append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Nth returns the nth stored word.
func (b *Buffer) Nth(n int) (corpus.Word, bool) {
	return NthWord(b.data, len(b.data), n)
}

// Words returns a copy of every stored word, in order.
func (b *Buffer) Words() []corpus.Word {
	words := make([]corpus.Word, 0, b.Count())
	for i := 0; ; i++ {
		w, ok := b.Nth(i)
		if !ok {
			return words
		}
		words = append(words, w)
	}
}

// NthWord returns the word in record slot n of buf, where size is the number
// of meaningful bytes in buf. The second result is false when buf is empty,
// size is not positive, n is negative, or slot n does not fit entirely
// within both size and buf.
func NthWord(buf []byte, size, n int) (corpus.Word, bool) {
	var w corpus.Word
	if len(buf) == 0 || size <= 0 || n < 0 {
		return w, false
	}
	if n >= size/corpus.RecordWidth || n >= len(buf)/corpus.RecordWidth {
		return w, false
	}
	off := n * corpus.RecordWidth
	copy(w[:], buf[off:off+corpus.WordLength])
	return w, true
}
