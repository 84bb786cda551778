package mocks

import (
	"context"

	"attrapi/internal/model"
	"attrapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCategoryAttributeService struct {
	mock.Mock
}

func (m *MockCategoryAttributeService) Create(ctx context.Context, in service.CreateCategoryAttributeInput) (*model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryCustomAttribute), args.Error(1)
}

func (m *MockCategoryAttributeService) Update(ctx context.Context, in service.UpdateCategoryAttributeInput) (*model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryCustomAttribute), args.Error(1)
}

func (m *MockCategoryAttributeService) List(ctx context.Context, categoryID string) ([]model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCustomAttribute), args.Error(1)
}

type MockProductAttributeService struct {
	mock.Mock
}

func (m *MockProductAttributeService) Create(ctx context.Context, in service.CreateProductAttributeInput) (*model.ProductCustomAttribute, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductCustomAttribute), args.Error(1)
}

func (m *MockProductAttributeService) UpdateBatch(ctx context.Context, items []service.UpdateProductAttributeInput) ([]model.ProductCustomAttribute, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductCustomAttribute), args.Error(1)
}

func (m *MockProductAttributeService) Delete(ctx context.Context, productID, attributeID string) error {
	args := m.Called(ctx, productID, attributeID)
	return args.Error(0)
}

func (m *MockProductAttributeService) List(ctx context.Context, productID string) ([]model.ProductCustomAttributeWithDefinition, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductCustomAttributeWithDefinition), args.Error(1)
}

type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncProduct(ctx context.Context, productID string) (*service.SyncResult, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncResult), args.Error(1)
}

func (m *MockSyncService) Inspect(ctx context.Context, categoryID string) (*service.InspectResult, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InspectResult), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) PresignUpload(ctx context.Context, name, contentType string) (*service.PresignResult, error) {
	args := m.Called(ctx, name, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PresignResult), args.Error(1)
}
