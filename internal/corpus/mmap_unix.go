// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd

package corpus

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"

	"github.com/tfctl/wordle/internal/log"
)

// mapFile maps path read-only into memory and returns the mapping together
// with the function that unmaps it. The file descriptor is closed before
// returning; the mapping stays valid until release is called.
func mapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat: %w", err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}

	size := info.Size()
	if size == 0 {
		// mmap rejects zero-length mappings; an empty dictionary is valid.
		return nil, func() error { return nil }, nil
	}
	if size > math.MaxInt {
		return nil, nil, fmt.Errorf("file too large to map: %d bytes", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mmap: %w", err)
	}

	if err := unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		log.Warnf("madvise sequential failed: path=%s err=%v", path, err)
	}

	return data, func() error { return unix.Munmap(data) }, nil
}
