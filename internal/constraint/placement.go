// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package constraint

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/tfctl/wordle/internal/corpus"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parsePlacement tokenizes s into rules. A letter opens a rule, digits that
// follow add disallowed positions to it. Any other byte after an open rule is
// read as a position and rejected as out of range; before the first letter it
// is an invalid character.
func parsePlacement(s string) ([]PlacementRule, error) {
	var rules []PlacementRule
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case corpus.IsLetter(c):
			rules = append(rules, PlacementRule{
				Letter:     c,
				Disallowed: bitset.New(corpus.WordLength),
			})
		case isDigit(c):
			if len(rules) == 0 {
				return nil, charError(ErrPlacementMissingLetter, "placement", s, i)
			}
			pos := int(c - '0')
			if pos >= corpus.WordLength {
				return nil, charError(ErrInvalidPlacementDigit, "placement", s, i)
			}
			rules[len(rules)-1].Disallowed.Set(uint(pos))
		case len(rules) > 0:
			return nil, charError(ErrInvalidPlacementDigit, "placement", s, i)
		default:
			return nil, charError(ErrInvalidPlacementChar, "placement", s, i)
		}
	}
	return rules, nil
}
