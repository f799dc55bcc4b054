// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/wordle/internal/corpus"
	"github.com/tfctl/wordle/internal/log"
	"github.com/tfctl/wordle/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OpenCorpus opens the dictionary named by --dict. The caller owns the
// returned handle and must close it.
func OpenCorpus(ctx context.Context, cmd *cli.Command) (*corpus.Handle, error) {
	spec := cmd.String("dict")
	log.Debugf("opening dictionary: dict=%s", spec)
	return corpus.Open(ctx, spec)
}

// stdout returns the writer results go to.
func stdout(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// stderr returns the writer diagnostics go to.
func stderr(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.ErrWriter != nil {
		return root.ErrWriter
	}
	return os.Stderr
}
