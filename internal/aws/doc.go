// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK configuration and reads dictionary objects from
// S3 for s3:// dictionary sources.
package aws
