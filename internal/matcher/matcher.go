// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package matcher scans a corpus for words satisfying a constraint.Set.
package matcher

import (
	"fmt"

	"github.com/tfctl/wordle/internal/constraint"
	"github.com/tfctl/wordle/internal/corpus"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/result"
)

// Match appends every word of c accepted by set to buf, in corpus order, and
// stops as soon as buf is full. A buffer with no room returns immediately
// without reading c. Records holding anything other than a-z are skipped.
func Match(c corpus.Corpus, set *constraint.Set, buf *result.Buffer) error {
	if buf.Full() {
		return nil
	}

	scanned, skipped := 0, 0
	for i := 0; i < c.Len() && !buf.Full(); i++ {
		w, err := c.At(i)
		if err != nil {
			return fmt.Errorf("failed to read record %d: %w", i, err)
		}
		scanned++
		if !w.Valid() {
			skipped++
			continue
		}
		ok := Accepts(set, w)
		if log.TraceEnabled() {
			log.Tracef("record checked: index=%d word=%s accepted=%t", i, w, ok)
		}
		if ok {
			buf.Append(w)
		}
	}

	if skipped > 0 {
		log.Debugf("skipped malformed records: count=%d", skipped)
	}
	log.Debugf("match done: scanned=%d matched=%d full=%t", scanned, buf.Count(), buf.Full())
	return nil
}

// MatchWords runs Match with room for limit words and returns them.
func MatchWords(c corpus.Corpus, set *constraint.Set, limit int) ([]corpus.Word, error) {
	buf := result.NewSlots(limit)
	if err := Match(c, set, buf); err != nil {
		return nil, err
	}
	return buf.Words(), nil
}

// Accepts reports whether w satisfies set.
func Accepts(set *constraint.Set, w corpus.Word) bool {
	return positionsOK(set, w) && placementsExcluded(set, w) && placementsPresent(set, w)
}

// positionsOK checks pinned letters and, at open positions only, the
// forbidden set.
func positionsOK(set *constraint.Set, w corpus.Word) bool {
	for i, c := range w {
		if set.Required.Pinned(i) {
			if set.Required[i] != c {
				return false
			}
			continue
		}
		if set.Forbidden.Has(c) {
			return false
		}
	}
	return true
}

// placementsExcluded checks that no rule's letter sits at one of its
// disallowed positions, pinned or not.
func placementsExcluded(set *constraint.Set, w corpus.Word) bool {
	for _, r := range set.Placements {
		for i, c := range w {
			if c == r.Letter && r.Excludes(i) {
				return false
			}
		}
	}
	return true
}

// placementsPresent checks that every rule's letter occurs at some open
// position.
func placementsPresent(set *constraint.Set, w corpus.Word) bool {
	for _, r := range set.Placements {
		found := false
		for i, c := range w {
			if c == r.Letter && !set.Required.Pinned(i) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
