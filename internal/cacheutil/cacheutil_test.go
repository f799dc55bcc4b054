// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", custom)

	dir, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, custom, dir)
}

func TestDir_FallsBackToUserCacheDir(t *testing.T) {
	t.Setenv("WORDLE_CACHE_DIR", "")

	dir, ok := Dir()
	if ok {
		assert.Equal(t, "wordle", filepath.Base(dir))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("WORDLE_CACHE", tt.value)
			assert.Equal(t, tt.expected, Enabled())
		})
	}
}

func TestWriteRead_PreservesTerminators(t *testing.T) {
	t.Setenv("WORDLE_CACHE_DIR", t.TempDir())
	t.Setenv("WORDLE_CACHE", "1")

	data := []byte("braai\nbrace\n")
	require.NoError(t, Write([]string{"s3", "words"}, "en/five.txt", data))

	entry, ok := Read([]string{"s3", "words"}, "en/five.txt")
	require.True(t, ok)
	assert.Equal(t, data, entry.Data)
	assert.Equal(t, "en/five.txt", entry.Key)
	assert.Equal(t, encodeKey("en/five.txt"), entry.EncodedKey)
	assert.False(t, entry.ModTime.IsZero())
}

func TestRead_Misses(t *testing.T) {
	t.Setenv("WORDLE_CACHE_DIR", t.TempDir())

	t.Run("missing entry", func(t *testing.T) {
		t.Setenv("WORDLE_CACHE", "1")
		entry, ok := Read([]string{"s3"}, "nope")
		assert.False(t, ok)
		assert.Nil(t, entry)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Setenv("WORDLE_CACHE", "1")
		require.NoError(t, Write([]string{"s3"}, "k", []byte("x")))
		t.Setenv("WORDLE_CACHE", "0")
		entry, ok := Read([]string{"s3"}, "k")
		assert.False(t, ok)
		assert.Nil(t, entry)
	})
}

func TestWrite_Disabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", dir)
	t.Setenv("WORDLE_CACHE", "false")

	require.NoError(t, Write([]string{"s3"}, "k", []byte("x")))
	_, exists := EntryPath([]string{"s3"}, "k")
	assert.False(t, exists)
}

func TestEntryPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", dir)

	p, exists := EntryPath([]string{"a", "b"}, "key")
	assert.False(t, exists)
	assert.Equal(t, filepath.Join(dir, "a", "b", encodeKey("key")), p)
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", dir)
	t.Setenv("WORDLE_CACHE", "1")

	require.NoError(t, Write([]string{"s3"}, "old", []byte("old")))
	require.NoError(t, Write([]string{"s3"}, "new", []byte("new")))

	oldPath, ok := EntryPath([]string{"s3"}, "old")
	require.True(t, ok)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	require.NoError(t, Purge(24))

	_, ok = EntryPath([]string{"s3"}, "old")
	assert.False(t, ok)
	_, ok = EntryPath([]string{"s3"}, "new")
	assert.True(t, ok)
}

func TestPurge_Disabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", dir)
	t.Setenv("WORDLE_CACHE", "1")

	require.NoError(t, Write(nil, "k", []byte("x")))
	p, _ := EntryPath(nil, "k")
	past := time.Now().Add(-1000 * time.Hour)
	require.NoError(t, os.Chtimes(p, past, past))

	require.NoError(t, Purge(0))
	_, ok := EntryPath(nil, "k")
	assert.True(t, ok)
}

func TestEncodeKey(t *testing.T) {
	assert.Len(t, encodeKey("anything"), 64)
	assert.Equal(t, encodeKey("same"), encodeKey("same"))
	assert.NotEqual(t, encodeKey("one"), encodeKey("two"))
}
