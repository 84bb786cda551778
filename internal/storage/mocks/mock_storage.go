package mocks

import (
	"context"
	"time"

	"attrapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PresignPost(ctx context.Context, key, contentType string, expiry time.Duration) (storage.PostPolicy, error) {
	args := m.Called(ctx, key, contentType, expiry)
	return args.Get(0).(storage.PostPolicy), args.Error(1)
}

func (m *MockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
