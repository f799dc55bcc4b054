// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by At for an index outside 0..Len()-1.
var ErrOutOfRange = errors.New("record index out of range")

// Corpus is an ordered, read-only sequence of fixed-length words. It owns no
// matching logic.
type Corpus interface {
	// Len returns the number of records.
	Len() int
	// At returns the word stored in record i. Records are returned as stored;
	// callers decide what to do with malformed ones (see Word.Valid).
	At(i int) (Word, error)
}

// records is a Corpus over a flat region of RecordWidth-wide records.
type records struct {
	data []byte
	n    int
}

// FromBytes returns a Corpus backed by data, which must be laid out in the
// dictionary record format. data is not copied and must not be modified while
// the Corpus is in use.
func FromBytes(data []byte) Corpus {
	return &records{
		data: data,
		n:    len(data) / RecordWidth,
	}
}

// FromWords builds an in-memory Corpus from literal words, in the given order.
// Each word must be exactly WordLength lowercase letters.
func FromWords(words ...string) (Corpus, error) {
	data := make([]byte, 0, len(words)*RecordWidth)
	for _, s := range words {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		data = append(data, w[:]...)
		data = append(data, '\n')
	}
	return FromBytes(data), nil
}

func (r *records) Len() int {
	return r.n
}

func (r *records) At(i int) (Word, error) {
	var w Word
	if i < 0 || i >= r.n {
		return w, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, r.n)
	}
	off := i * RecordWidth
	copy(w[:], r.data[off:off+WordLength])
	return w, nil
}

// Words returns every word in c in corpus order. It is meant for small
// corpora and tests; matching code should iterate with At.
func Words(c Corpus) ([]Word, error) {
	words := make([]Word, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		w, err := c.At(i)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}
