// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tfctl/wordle/internal/log"
)

// Handle is an open dictionary. It embeds the Corpus so it can be handed
// straight to the matcher, and owns whatever resource backs it. Close must be
// called when the handle is no longer needed.
type Handle struct {
	Corpus

	// Source is the path or URL the dictionary was opened from.
	Source string
	// Size is the dictionary size in bytes.
	Size int64
	// Fetched is when a remote dictionary was downloaded. It is zero for
	// local files.
	Fetched time.Time

	release func() error
	closed  bool
}

// Open resolves spec to a dictionary and returns a Handle for it. spec is
// either a filesystem path or an s3://bucket/key URL; an optional region can
// be given as s3://bucket/key?region=us-east-1.
func Open(ctx context.Context, spec string) (*Handle, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.New("no dictionary specified")
	}

	if strings.HasPrefix(spec, s3Scheme) {
		return openS3(ctx, spec)
	}

	return openFile(spec)
}

// Close releases the resource behind the handle. It is safe to call more than
// once. After Close the handle behaves as an empty corpus.
func (h *Handle) Close() error {
	if h == nil || h.closed {
		return nil
	}
	h.closed = true
	h.Corpus = FromBytes(nil)

	if h.release == nil {
		return nil
	}
	if err := h.release(); err != nil {
		return fmt.Errorf("failed to release dictionary %s: %w", h.Source, err)
	}
	log.Debugf("dictionary released: source=%s", h.Source)
	return nil
}

func openFile(path string) (*Handle, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}

	h := &Handle{
		Corpus:  FromBytes(data),
		Source:  path,
		Size:    int64(len(data)),
		release: release,
	}
	log.Debugf("dictionary opened: source=%s bytes=%d records=%d", path, h.Size, h.Len())
	return h, nil
}
