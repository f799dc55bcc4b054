// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	awsx "github.com/tfctl/wordle/internal/aws"
	"github.com/tfctl/wordle/internal/cacheutil"
	"github.com/tfctl/wordle/internal/config"
	"github.com/tfctl/wordle/internal/log"
)

const s3Scheme = "s3://"

// s3Location is a parsed s3://bucket/key?region=...&profile=... dictionary
// URL.
type s3Location struct {
	Bucket  string
	Key     string
	Region  string
	Profile string
}

// awsOptions maps the URL query overrides onto AWS config options.
func (l s3Location) awsOptions() []awsx.Option {
	var opts []awsx.Option
	if l.Profile != "" {
		opts = append(opts, awsx.WithProfile(l.Profile))
	}
	if l.Region != "" {
		opts = append(opts, awsx.WithRegion(l.Region))
	}
	return opts
}

// fetchS3 downloads the object at loc. It is a variable so tests can serve
// dictionaries without AWS.
var fetchS3 = func(ctx context.Context, loc s3Location) ([]byte, error) {
	cfg, err := awsx.LoadAWSConfig(ctx, loc.awsOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return awsx.ReadObject(ctx, awsx.NewS3(cfg), loc.Bucket, loc.Key)
}

func parseS3URL(spec string) (s3Location, error) {
	u, err := url.Parse(spec)
	if err != nil {
		return s3Location{}, fmt.Errorf("invalid s3 url %q: %w", spec, err)
	}
	q := u.Query()
	loc := s3Location{
		Bucket:  u.Host,
		Key:     strings.TrimPrefix(u.Path, "/"),
		Region:  q.Get("region"),
		Profile: q.Get("profile"),
	}
	if loc.Bucket == "" || loc.Key == "" {
		return s3Location{}, fmt.Errorf("invalid s3 url %q: want s3://bucket/key", spec)
	}
	return loc, nil
}

// cacheKey ignores region and profile so the same object is cached once.
func (l s3Location) cacheKey() string {
	return s3Scheme + l.Bucket + "/" + l.Key
}

// openS3 serves an S3 dictionary from the local cache when present, otherwise
// downloads and caches it. The bytes are held in memory for the life of the
// handle.
func openS3(ctx context.Context, spec string) (*Handle, error) {
	loc, err := parseS3URL(spec)
	if err != nil {
		return nil, err
	}

	cleanHours, _ := config.GetInt("cache.clean")
	if err := cacheutil.Purge(cleanHours); err != nil {
		log.WithError(err).Warnf("cache purge failed")
	}

	sub := []string{"s3", loc.Bucket}
	var data []byte
	fetched := time.Now()
	if entry, ok := cacheutil.Read(sub, loc.cacheKey()); ok {
		data = entry.Data
		fetched = entry.ModTime
	} else {
		data, err = fetchS3(ctx, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to open dictionary %s: %w", spec, err)
		}
		if err := cacheutil.Write(sub, loc.cacheKey(), data); err != nil {
			log.WithError(err).Warnf("failed to cache dictionary %s", spec)
		}
	}

	h := &Handle{
		Corpus:  FromBytes(data),
		Source:  spec,
		Size:    int64(len(data)),
		Fetched: fetched,
	}
	log.Debugf("dictionary opened: source=%s bytes=%d records=%d", spec, h.Size, h.Len())
	return h, nil
}
