// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil stores downloaded dictionaries on disk so remote sources
// are fetched once and then served locally.
package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/wordle/internal/log"
)

// Entry is a cached dictionary on disk. Key is the clear-text key and
// EncodedKey the hashed filename.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
	ModTime    time.Time
}

// Dir resolves the base cache directory.
// Precedence:
//  1. WORDLE_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/wordle
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("WORDLE_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "wordle"), true
	}
	return "", false
}

// Enabled returns true unless WORDLE_CACHE explicitly disables it ("0" or
// "false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("WORDLE_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EntryPath returns the path where the entry for clearKey beneath subdirs
// would live, and whether a file currently exists there.
func EntryPath(subdirs []string, clearKey string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	p := filepath.Join(append([]string{base}, append(subdirs, encodeKey(clearKey))...)...)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}

// Purge removes cached files older than hours. hours <= 0 disables purging.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(base, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if info == nil {
			return nil
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// Read returns the cached entry for clearKey, if caching is enabled and the
// entry exists. Data is returned byte for byte; dictionary records end in a
// terminator that must survive the round trip.
func Read(subdirs []string, clearKey string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, clearKey)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{
		Key:        clearKey,
		EncodedKey: encodeKey(clearKey),
		Path:       p,
		Data:       b,
		ModTime:    info.ModTime(),
	}, true
}

// Write stores data for clearKey beneath subdirs, creating directories as
// needed. It is a no-op when caching is disabled.
func Write(subdirs []string, clearKey string, data []byte) error {
	if !Enabled() {
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(clearKey))
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s bytes=%d", clearKey, len(data))
	return nil
}

// encodeKey returns the hex sha256 of input, used as the on-disk filename.
func encodeKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
