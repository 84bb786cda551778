// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"time"

	"attrapi/internal/model"
)

// CategoryAttributeRepository defines data access for category attribute
// definitions using SQL queries only. No business logic here, strictly
// persistence operations.
type CategoryAttributeRepository interface {
	// Create inserts a new definition row. The caller provides ID, Key and
	// timestamps; the stored row is returned.
	Create(ctx context.Context, attr *model.CategoryCustomAttribute) (*model.CategoryCustomAttribute, error)

	// Update applies a partial update. Nil fields are left untouched; a
	// non-nil DeletedAt performs the soft delete. Returns the updated row.
	Update(ctx context.Context, upd CategoryAttributeUpdate) (*model.CategoryCustomAttribute, error)

	// ListByCategory returns active (deleted_at IS NULL) definitions for one
	// category. An empty result is a nil-error empty slice.
	ListByCategory(ctx context.Context, categoryID string) ([]model.CategoryCustomAttribute, error)

	// ListByCategoryIDs returns active definitions across a set of categories.
	ListByCategoryIDs(ctx context.Context, categoryIDs []string) ([]model.CategoryCustomAttribute, error)

	// ListActive returns every active definition regardless of category.
	ListActive(ctx context.Context) ([]model.CategoryCustomAttribute, error)
}

// CategoryAttributeUpdate carries the mutable definition fields. Only non-nil
// fields are written.
type CategoryAttributeUpdate struct {
	ID        string
	Label     *string
	Type      *string
	DeletedAt *time.Time
}

// ProductAttributeRepository defines data access for product attribute values.
type ProductAttributeRepository interface {
	// Create inserts a new value row and returns the stored record.
	Create(ctx context.Context, attr *model.ProductCustomAttribute) (*model.ProductCustomAttribute, error)

	// Update applies a partial update to one value row.
	Update(ctx context.Context, upd ProductAttributeUpdate) (*model.ProductCustomAttribute, error)

	// ListByProduct returns every value row for the product joined with its
	// owning definition. deleted_at is not filtered here; callers decide.
	ListByProduct(ctx context.Context, productID string) ([]model.ProductCustomAttributeWithDefinition, error)

	// SoftDeleteByProduct marks all active value rows for the product as
	// deleted. Used as the compensating action of the create command.
	SoftDeleteByProduct(ctx context.Context, productID string) error
}

// ProductAttributeUpdate carries the mutable value fields. Only non-nil fields
// are written.
type ProductAttributeUpdate struct {
	ID        string
	Value     *string
	IsVisible *bool
	DeletedAt *time.Time
}

// CatalogRepository reads the platform-owned category and product tables.
// This module never writes to them.
type CatalogRepository interface {
	// CategoriesForProduct returns the categories the product is assigned to.
	CategoriesForProduct(ctx context.Context, productID string) ([]model.ProductCategory, error)

	// ListCategories returns all categories, or just one when categoryID is
	// non-empty.
	ListCategories(ctx context.Context, categoryID string) ([]model.ProductCategory, error)

	// ProductsByCategory returns products grouped by category id, covering all
	// categories (or just one when categoryID is non-empty).
	ProductsByCategory(ctx context.Context, categoryID string) (map[string][]model.Product, error)
}
