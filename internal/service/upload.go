package service

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"attrapi/internal/storage"
)

var ErrNameRequired = errors.New("name is required")

// uploadKeyPrefix namespaces attribute uploads inside the bucket.
const uploadKeyPrefix = "custom-attributes"

// PresignResult is what the admin UI needs to upload a file directly to
// object storage: POST the fields plus the file to url, then store fileUrl
// as the attribute value.
type PresignResult struct {
	URL     string            `json:"url"`
	Fields  map[string]string `json:"fields"`
	FileURL string            `json:"fileUrl"`
}

// UploadService issues presigned upload policies for file-typed attributes.
type UploadService interface {
	// PresignUpload returns a POST policy for uploading a file. The original
	// filename is used only for its extension; the stored key is
	// UUID-generated.
	PresignUpload(ctx context.Context, name, contentType string) (*PresignResult, error)
}

type uploadService struct {
	store  storage.Storage
	expiry time.Duration
}

// NewUploadService constructs a new UploadService. expiry bounds how long an
// issued policy stays valid.
func NewUploadService(store storage.Storage, expiry time.Duration) UploadService {
	return &uploadService{store: store, expiry: expiry}
}

func (s *uploadService) PresignUpload(ctx context.Context, name, contentType string) (*PresignResult, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	ext := filepath.Ext(name)
	key := filepath.ToSlash(filepath.Join(uploadKeyPrefix, uuid.NewString()+ext))

	policy, err := s.store.PresignPost(ctx, key, contentType, s.expiry)
	if err != nil {
		return nil, err
	}
	return &PresignResult{
		URL:     policy.URL,
		Fields:  policy.Fields,
		FileURL: s.store.PublicURL(key),
	}, nil
}
