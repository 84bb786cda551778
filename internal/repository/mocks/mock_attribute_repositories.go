package mocks

import (
	"context"

	"attrapi/internal/model"
	"attrapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockCategoryAttributeRepository struct {
	mock.Mock
}

func (m *MockCategoryAttributeRepository) Create(ctx context.Context, attr *model.CategoryCustomAttribute) (*model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, attr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryCustomAttribute), args.Error(1)
}

func (m *MockCategoryAttributeRepository) Update(ctx context.Context, upd repository.CategoryAttributeUpdate) (*model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryCustomAttribute), args.Error(1)
}

func (m *MockCategoryAttributeRepository) ListByCategory(ctx context.Context, categoryID string) ([]model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCustomAttribute), args.Error(1)
}

func (m *MockCategoryAttributeRepository) ListByCategoryIDs(ctx context.Context, categoryIDs []string) ([]model.CategoryCustomAttribute, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCustomAttribute), args.Error(1)
}

func (m *MockCategoryAttributeRepository) ListActive(ctx context.Context) ([]model.CategoryCustomAttribute, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCustomAttribute), args.Error(1)
}

type MockProductAttributeRepository struct {
	mock.Mock
}

func (m *MockProductAttributeRepository) Create(ctx context.Context, attr *model.ProductCustomAttribute) (*model.ProductCustomAttribute, error) {
	args := m.Called(ctx, attr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductCustomAttribute), args.Error(1)
}

func (m *MockProductAttributeRepository) Update(ctx context.Context, upd repository.ProductAttributeUpdate) (*model.ProductCustomAttribute, error) {
	args := m.Called(ctx, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductCustomAttribute), args.Error(1)
}

func (m *MockProductAttributeRepository) ListByProduct(ctx context.Context, productID string) ([]model.ProductCustomAttributeWithDefinition, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductCustomAttributeWithDefinition), args.Error(1)
}

func (m *MockProductAttributeRepository) SoftDeleteByProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CategoriesForProduct(ctx context.Context, productID string) ([]model.ProductCategory, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductCategory), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context, categoryID string) ([]model.ProductCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductCategory), args.Error(1)
}

func (m *MockCatalogRepository) ProductsByCategory(ctx context.Context, categoryID string) (map[string][]model.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.Product), args.Error(1)
}
