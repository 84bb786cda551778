package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"attrapi/internal/config"
)

// minioStorage implements the Storage interface using an S3-compatible backend
// (MinIO, AWS S3, etc.). It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStorage{
		client:    cli,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// PresignPost builds a POST policy for a direct browser upload.
func (m *minioStorage) PresignPost(ctx context.Context, key, contentType string, expiry time.Duration) (PostPolicy, error) {
	policy := minio.NewPostPolicy()
	if err := policy.SetBucket(m.bucket); err != nil {
		return PostPolicy{}, fmt.Errorf("set bucket: %w", err)
	}
	if err := policy.SetKey(key); err != nil {
		return PostPolicy{}, fmt.Errorf("set key: %w", err)
	}
	if err := policy.SetExpires(time.Now().UTC().Add(expiry)); err != nil {
		return PostPolicy{}, fmt.Errorf("set expires: %w", err)
	}
	if contentType != "" {
		if err := policy.SetContentType(contentType); err != nil {
			return PostPolicy{}, fmt.Errorf("set content type: %w", err)
		}
	}

	u, fields, err := m.client.PresignedPostPolicy(ctx, policy)
	if err != nil {
		return PostPolicy{}, err
	}
	return PostPolicy{URL: u.String(), Fields: fields}, nil
}

// PublicURL joins the configured public endpoint (or the client endpoint when
// none is configured) with the bucket and key.
func (m *minioStorage) PublicURL(key string) string {
	base := m.publicURL
	if base == "" {
		base = strings.TrimRight(m.client.EndpointURL().String(), "/")
	}
	return base + "/" + m.bucket + "/" + key
}
