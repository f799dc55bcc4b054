// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package corpus

import "fmt"

const (
	// WordLength is the number of letters in every word.
	WordLength = 5

	// RecordWidth is the on-disk and in-buffer width of a word record: the
	// letters plus one terminator byte.
	RecordWidth = WordLength + 1
)

// Word is a fixed-length sequence of lowercase ASCII letters.
type Word [WordLength]byte

// String returns the letters of the word.
func (w Word) String() string {
	return string(w[:])
}

// Valid reports whether every position holds a lowercase ASCII letter.
func (w Word) Valid() bool {
	for _, c := range w {
		if !IsLetter(c) {
			return false
		}
	}
	return true
}

// IsLetter reports whether c is in a-z.
func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// ParseWord converts s into a Word. s must be exactly WordLength lowercase
// letters.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLength {
		return w, fmt.Errorf("word %q: want %d letters, got %d", s, WordLength, len(s))
	}
	for i := 0; i < WordLength; i++ {
		if !IsLetter(s[i]) {
			return Word{}, fmt.Errorf("word %q: invalid letter %q at %d", s, s[i], i)
		}
		w[i] = s[i]
	}
	return w, nil
}

// MustParseWord is ParseWord for literals known to be valid. It panics on
// error.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}
