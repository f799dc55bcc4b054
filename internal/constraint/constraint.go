// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package constraint

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/tfctl/wordle/internal/corpus"
)

// Open marks an unconstrained position in a required pattern.
const Open = '-'

// Required pins letters to positions. A zero byte leaves the position open.
type Required [corpus.WordLength]byte

// Pinned reports whether position pos carries a required letter.
func (r Required) Pinned(pos int) bool {
	return r[pos] != 0
}

// String renders r in pattern form, e.g. "--e--".
func (r Required) String() string {
	var b strings.Builder
	for _, c := range r {
		if c == 0 {
			b.WriteByte(Open)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Forbidden is a set of letters that may not appear at open positions. The
// zero value is the empty set.
type Forbidden struct {
	bits *bitset.BitSet
}

// Has reports whether letter c is forbidden.
func (f Forbidden) Has(c byte) bool {
	if f.bits == nil || !corpus.IsLetter(c) {
		return false
	}
	return f.bits.Test(uint(c - 'a'))
}

// Len returns the number of distinct forbidden letters.
func (f Forbidden) Len() int {
	if f.bits == nil {
		return 0
	}
	return int(f.bits.Count())
}

// String returns the forbidden letters in alphabetical order.
func (f Forbidden) String() string {
	if f.bits == nil {
		return ""
	}
	var b strings.Builder
	for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
		b.WriteByte(byte('a' + i))
	}
	return b.String()
}

// PlacementRule says Letter is in the word, at an open position, but at none
// of the Disallowed positions.
type PlacementRule struct {
	Letter     byte
	Disallowed *bitset.BitSet
}

// Excludes reports whether the rule disallows its letter at pos.
func (r PlacementRule) Excludes(pos int) bool {
	if r.Disallowed == nil || pos < 0 {
		return false
	}
	return r.Disallowed.Test(uint(pos))
}

// Positions returns the disallowed positions in ascending order.
func (r PlacementRule) Positions() []int {
	if r.Disallowed == nil {
		return nil
	}
	var out []int
	for i, ok := r.Disallowed.NextSet(0); ok; i, ok = r.Disallowed.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// String renders the rule in placement form, digits ascending.
func (r PlacementRule) String() string {
	var b strings.Builder
	b.WriteByte(r.Letter)
	for _, p := range r.Positions() {
		b.WriteByte(byte('0' + p))
	}
	return b.String()
}

// Set is a parsed query. It is not modified after Parse returns.
type Set struct {
	Required   Required
	Forbidden  Forbidden
	Placements []PlacementRule
}

// Parse validates the three query arguments and builds a Set. On failure the
// error is a *ParseError and no Set is returned.
func Parse(required, forbidden, placement string) (*Set, error) {
	req, err := parseRequired(required)
	if err != nil {
		return nil, err
	}
	forb, err := parseForbidden(forbidden)
	if err != nil {
		return nil, err
	}
	rules, err := parsePlacement(placement)
	if err != nil {
		return nil, err
	}
	return &Set{Required: req, Forbidden: forb, Placements: rules}, nil
}

func parseRequired(s string) (Required, error) {
	var r Required
	if len(s) != corpus.WordLength {
		return r, &ParseError{
			Kind:   ErrInvalidRequired,
			Arg:    "required",
			Input:  s,
			Pos:    -1,
			Detail: fmt.Sprintf("want %d characters, got %d", corpus.WordLength, len(s)),
		}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == Open:
		case corpus.IsLetter(c):
			r[i] = c
		default:
			return Required{}, charError(ErrInvalidRequired, "required", s, i)
		}
	}
	return r, nil
}

func parseForbidden(s string) (Forbidden, error) {
	if s == "" {
		return Forbidden{}, nil
	}
	bits := bitset.New(26)
	for i := 0; i < len(s); i++ {
		if !corpus.IsLetter(s[i]) {
			return Forbidden{}, charError(ErrInvalidForbidden, "forbidden", s, i)
		}
		bits.Set(uint(s[i] - 'a'))
	}
	return Forbidden{bits: bits}, nil
}

// String renders the set as its three arguments in canonical form, placement
// rules joined without separators.
func (s *Set) String() string {
	var p strings.Builder
	for _, r := range s.Placements {
		p.WriteString(r.String())
	}
	return fmt.Sprintf("required=%s forbidden=%s placement=%s", s.Required, s.Forbidden, p.String())
}

// Conflicts returns letters that are both pinned and forbidden, in
// alphabetical order. These are legal, since pinned positions ignore the
// forbidden set, but usually a typo.
func (s *Set) Conflicts() []byte {
	var out []byte
	for c := byte('a'); c <= 'z'; c++ {
		if !s.Forbidden.Has(c) {
			continue
		}
		for _, r := range s.Required {
			if r == c {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Unsatisfiable returns the placement rules no word can meet: every open
// position is either disallowed or the letter is forbidden.
func (s *Set) Unsatisfiable() []PlacementRule {
	var out []PlacementRule
	for _, r := range s.Placements {
		if s.Forbidden.Has(r.Letter) {
			out = append(out, r)
			continue
		}
		possible := false
		for p := 0; p < corpus.WordLength; p++ {
			if !s.Required.Pinned(p) && !r.Excludes(p) {
				possible = true
				break
			}
		}
		if !possible {
			out = append(out, r)
		}
	}
	return out
}
