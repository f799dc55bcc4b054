// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"fmt"
	"sort"
)

// Stats summarizes a dictionary.
type Stats struct {
	// Records is the total number of records, malformed ones included.
	Records int
	// Malformed counts records holding anything other than a-z.
	Malformed int
	// Letters[p][c-'a'] counts well-formed words with letter c at position p.
	Letters [WordLength][26]int
}

// LetterCount pairs a letter with its frequency.
type LetterCount struct {
	Letter byte
	Count  int
}

// Inspect scans c once and gathers Stats.
func Inspect(c Corpus) (Stats, error) {
	var s Stats
	s.Records = c.Len()
	for i := 0; i < s.Records; i++ {
		w, err := c.At(i)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to read record %d: %w", i, err)
		}
		if !w.Valid() {
			s.Malformed++
			continue
		}
		for p, l := range w {
			s.Letters[p][l-'a']++
		}
	}
	return s, nil
}

// Top returns up to n of the most frequent letters at position pos, most
// frequent first, ties broken alphabetically. Letters that never occur are
// omitted.
func (s Stats) Top(pos, n int) []LetterCount {
	if pos < 0 || pos >= WordLength || n <= 0 {
		return nil
	}

	counts := make([]LetterCount, 0, 26)
	for i, c := range s.Letters[pos] {
		if c > 0 {
			counts = append(counts, LetterCount{Letter: byte('a' + i), Count: c})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
