// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGetter serves a fixed body, or an error, for every GetObject call.
type fakeGetter struct {
	body  []byte
	err   error
	input *s3v2.GetObjectInput
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		profile string
		region  string
	}{
		{
			name: "no options",
		},
		{
			name:    "profile only",
			opts:    []Option{WithProfile("dict-reader")},
			profile: "dict-reader",
		},
		{
			name:   "region only",
			opts:   []Option{WithRegion("eu-west-1")},
			region: "eu-west-1",
		},
		{
			name:   "later region wins",
			opts:   []Option{WithRegion("us-east-1"), WithRegion("ap-southeast-2")},
			region: "ap-southeast-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o options
			for _, opt := range tt.opts {
				opt(&o)
			}
			assert.Equal(t, tt.profile, o.profile)
			assert.Equal(t, tt.region, o.region)
		})
	}
}

func TestLoadAWSConfig_WithRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)

	client := NewS3(cfg)
	assert.IsType(t, &s3v2.Client{}, client)
}

func TestReadObject(t *testing.T) {
	body := []byte("braai\nbrace\n")
	getter := &fakeGetter{body: body}

	data, err := ReadObject(context.Background(), getter, "words", "en/five.txt")
	require.NoError(t, err)
	assert.Equal(t, body, data)
	require.NotNil(t, getter.input)
	assert.Equal(t, "words", awsv2.ToString(getter.input.Bucket))
	assert.Equal(t, "en/five.txt", awsv2.ToString(getter.input.Key))
}

func TestReadObject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		key     string
		getter  *fakeGetter
		errPart string
	}{
		{
			name:    "missing bucket",
			key:     "k",
			getter:  &fakeGetter{},
			errPart: "bucket and key are required",
		},
		{
			name:    "missing key",
			bucket:  "b",
			getter:  &fakeGetter{},
			errPart: "bucket and key are required",
		},
		{
			name:    "get fails",
			bucket:  "b",
			key:     "k",
			getter:  &fakeGetter{err: errors.New("access denied")},
			errPart: "failed to get s3://b/k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadObject(context.Background(), tt.getter, tt.bucket, tt.key)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
