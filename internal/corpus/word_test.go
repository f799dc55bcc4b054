// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{name: "valid", in: "crane"},
		{name: "too short", in: "cran", wantErr: "want 5 letters"},
		{name: "too long", in: "cranes", wantErr: "want 5 letters"},
		{name: "upper case", in: "Crane", wantErr: "invalid letter"},
		{name: "digit", in: "cr4ne", wantErr: "invalid letter"},
		{name: "multibyte", in: "crané", wantErr: "want 5 letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.in)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Equal(t, Word{}, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, w.String())
		})
	}
}

func TestMustParseWordPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseWord("nope") })
	assert.NotPanics(t, func() { MustParseWord("yield") })
}

func TestWordValid(t *testing.T) {
	assert.True(t, MustParseWord("zesty").Valid())
	assert.False(t, Word{'a', 'b', 'c', 'd', 0}.Valid())
	assert.False(t, Word{'a', 'B', 'c', 'd', 'e'}.Valid())
}
