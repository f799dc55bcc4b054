// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package corpus provides the ordered, read-only word list that queries are
// matched against.
//
// A dictionary is a flat file of fixed-width records. Each record is
// WordLength lowercase letters followed by a single terminator byte, for a
// record width of RecordWidth bytes. There is no header and no separator
// beyond the terminator, so the record count is the file size divided by
// RecordWidth. A trailing partial record is ignored.
//
// Dictionaries are opened through Open, which accepts either a local path or
// an s3://bucket/key URL. The optional region and profile query parameters
// override the AWS config chain for that object. Local files are memory mapped where the platform
// supports it. The returned Handle owns the underlying resource and must be
// closed by the caller; a single Handle can serve any number of queries.
package corpus
