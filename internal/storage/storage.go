package storage

import (
	"context"
	"time"
)

// Package storage contains the S3-compatible object storage abstraction used
// for file-typed attribute uploads. The service never proxies file bytes;
// browsers upload directly against a presigned POST policy.

// PostPolicy is the result of presigning a browser upload: the form action URL
// and the form fields the client must send alongside the file.
type PostPolicy struct {
	URL    string
	Fields map[string]string
}

// Storage issues presigned upload policies against an S3-compatible backend.
type Storage interface {
	// PresignPost returns a time-limited POST policy for uploading an object
	// under the given key. contentType, when non-empty, is enforced by the
	// policy.
	PresignPost(ctx context.Context, key, contentType string, expiry time.Duration) (PostPolicy, error)

	// PublicURL returns the fully-qualified URL the object will be readable
	// at once uploaded. This is what gets stored as a file-typed attribute
	// value.
	PublicURL(key string) string
}
