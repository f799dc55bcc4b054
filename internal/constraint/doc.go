// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package constraint parses the three query languages into an immutable Set.
//
// Required is exactly five characters, each a lowercase letter pinning that
// position or '-' leaving it open:
//
//	--e--   third letter is e
//	br---   starts with br
//
// Forbidden is a possibly empty run of lowercase letters that may not appear
// at any open position. Pinned positions are never checked against it.
//
// Placement is a sequence of rules. Each rule is a letter followed by zero or
// more digits 0-4 naming positions where the letter is known not to be. The
// letter must still appear somewhere in the word at an open position:
//
//	e03   e is present, but not first and not fourth
//	e0a4  e not first, a not last, both present
//	r     r is present somewhere open
//
// Parse validates all three strictly and returns a *ParseError describing
// the first offending character. It never returns a partial Set.
package constraint
