// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/wordle/internal/log"
)

// MaxObjectBytes caps how much of an S3 object ReadObject will buffer. The
// largest English five-letter lists are well under a megabyte.
const MaxObjectBytes = 64 << 20

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
}

// Option customizes how AWS config is loaded. With no options the shell
// environment and shared config chain (AWS_PROFILE, ~/.aws/config, IMDS, ...)
// are inherited.
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// LoadAWSConfig loads AWS SDK v2 config, applying any overrides.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("aws opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("aws config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	return cfg, nil
}

// NewS3 constructs an S3 client from cfg.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// ObjectGetter is the subset of the S3 client used to fetch dictionaries.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// ReadObject fetches s3://bucket/key and returns its body. Objects larger
// than MaxObjectBytes are rejected rather than truncated.
func ReadObject(ctx context.Context, api ObjectGetter, bucket, key string) ([]byte, error) {
	if bucket == "" || key == "" {
		return nil, errors.New("bucket and key are required")
	}

	out, err := api.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxObjectBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	if len(data) > MaxObjectBytes {
		return nil, fmt.Errorf("s3://%s/%s exceeds %d bytes", bucket, key, MaxObjectBytes)
	}

	log.Debugf("s3 object read: bucket=%s key=%s bytes=%d", bucket, key, len(data))
	return data, nil
}
