// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package constraint

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against a returned error to classify it.
var (
	ErrInvalidRequired        = errors.New("invalid required pattern")
	ErrInvalidForbidden       = errors.New("invalid forbidden letters")
	ErrPlacementMissingLetter = errors.New("placement digit without a letter")
	ErrInvalidPlacementDigit  = errors.New("placement position out of range")
	ErrInvalidPlacementChar   = errors.New("invalid placement character")
)

// ParseError reports where an argument failed to parse.
type ParseError struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Arg names the argument: required, forbidden or placement.
	Arg string
	// Input is the argument as given.
	Input string
	// Pos is the byte offset of the offending character, or -1 when the
	// argument as a whole is wrong (e.g. bad length).
	Pos int
	// Char is the offending character when Pos >= 0.
	Char byte
	// Detail optionally elaborates on Kind.
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s: %q at position %d of %q", msg, e.Char, e.Pos, e.Input)
	} else {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func charError(kind error, arg, input string, pos int) *ParseError {
	return &ParseError{Kind: kind, Arg: arg, Input: input, Pos: pos, Char: input[pos]}
}
