package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"attrapi/internal/model"
	"attrapi/internal/repository"
)

// CategoryRef identifies one category in a sync summary.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SyncAttributeDefinition is the definition subset echoed on each sync entry.
type SyncAttributeDefinition struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SyncAttribute is one created or already-present value in a sync summary.
type SyncAttribute struct {
	ID                        string                  `json:"id"`
	CategoryCustomAttributeID string                  `json:"category_custom_attribute_id"`
	CategoryCustomAttribute   SyncAttributeDefinition `json:"category_custom_attribute"`
	Value                     string                  `json:"value"`
}

// SyncResult summarizes one reconciliation run for a product.
type SyncResult struct {
	Message           string          `json:"message"`
	ProductID         string          `json:"product_id"`
	Categories        []CategoryRef   `json:"categories"`
	AttributesCreated int             `json:"attributes_created"`
	AttributesUpdated int             `json:"attributes_updated"`
	AttributesTotal   int             `json:"attributes_total"`
	Created           []SyncAttribute `json:"created"`
	Updated           []SyncAttribute `json:"updated"`
}

// InspectEntry is one category row of the full-join inspection report.
// Categories that appear on only one side still show up with empty collections
// on the other.
type InspectEntry struct {
	Category   model.ProductCategory           `json:"category"`
	Products   []model.Product                 `json:"products"`
	Attributes []model.CategoryCustomAttribute `json:"attributes"`
}

// InspectResult is the categories x products x definitions report.
type InspectResult struct {
	Result          []InspectEntry `json:"result"`
	CategoriesCount int            `json:"categories_count"`
	ProductsCount   int            `json:"products_count"`
	AttributesCount int            `json:"attributes_count"`
	ProductID       *string        `json:"product_id"`
	CategoryID      *string        `json:"category_id"`
}

// SyncService reconciles category attribute definitions onto products.
type SyncService interface {
	// SyncProduct ensures the product has a value record for every definition
	// of every category it belongs to, creating empty-valued records where
	// missing. Per-definition creation failures are logged and reported with
	// a non-persisted fallback id; the run never aborts partway.
	SyncProduct(ctx context.Context, productID string) (*SyncResult, error)

	// Inspect returns the full-join report across categories, their products
	// and their definitions, optionally limited to one category. Read-only.
	Inspect(ctx context.Context, categoryID string) (*InspectResult, error)
}

type syncService struct {
	catalog       repository.CatalogRepository
	categoryAttrs repository.CategoryAttributeRepository
	productAttrs  ProductAttributeService
	values        repository.ProductAttributeRepository
}

// NewSyncService constructs a new SyncService. Creation of missing values goes
// through the ProductAttributeService so the same validate/create command runs
// as for direct API creation.
func NewSyncService(
	catalog repository.CatalogRepository,
	categoryAttrs repository.CategoryAttributeRepository,
	values repository.ProductAttributeRepository,
	productAttrs ProductAttributeService,
) SyncService {
	return &syncService{
		catalog:       catalog,
		categoryAttrs: categoryAttrs,
		productAttrs:  productAttrs,
		values:        values,
	}
}

func (s *syncService) SyncProduct(ctx context.Context, productID string) (*SyncResult, error) {
	if productID == "" {
		return nil, ErrIDRequired
	}

	categories, err := s.catalog.CategoriesForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return emptySyncResult(productID, nil, "No categories found for this product"), nil
	}

	categoryIDs := make([]string, len(categories))
	for i, c := range categories {
		categoryIDs[i] = c.ID
	}

	definitions, err := s.categoryAttrs.ListByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	if len(definitions) == 0 {
		return emptySyncResult(productID, categories, "No attributes found for this product's categories"), nil
	}

	existing, err := s.values.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	existingByDefinition := make(map[string]model.ProductCustomAttributeWithDefinition, len(existing))
	for _, v := range existing {
		if v.DeletedAt != nil {
			continue
		}
		existingByDefinition[v.CategoryCustomAttributeID] = v
	}

	created := make([]SyncAttribute, 0)
	updated := make([]SyncAttribute, 0)
	for _, def := range definitions {
		defRef := SyncAttributeDefinition{Key: def.Key, Label: def.Label}

		if v, ok := existingByDefinition[def.ID]; ok {
			// Already present; reported as updated without mutation.
			updated = append(updated, SyncAttribute{
				ID:                        v.ID,
				CategoryCustomAttributeID: def.ID,
				CategoryCustomAttribute:   defRef,
				Value:                     v.Value,
			})
			continue
		}

		attr, err := s.productAttrs.Create(ctx, CreateProductAttributeInput{
			ProductID:                 productID,
			CategoryCustomAttributeID: def.ID,
			Value:                     "",
		})
		if err != nil {
			logJSON(map[string]any{
				"level":                        "error",
				"msg":                          "sync_attribute_create_failed",
				"product_id":                   productID,
				"category_custom_attribute_id": def.ID,
				"error":                        err.Error(),
			})
			// Keep the response structurally complete with a non-persisted id.
			created = append(created, SyncAttribute{
				ID:                        "pca_fallback_" + uuid.NewString(),
				CategoryCustomAttributeID: def.ID,
				CategoryCustomAttribute:   defRef,
				Value:                     "",
			})
			continue
		}

		created = append(created, SyncAttribute{
			ID:                        attr.ID,
			CategoryCustomAttributeID: def.ID,
			CategoryCustomAttribute:   defRef,
			Value:                     "",
		})
	}

	return &SyncResult{
		Message:           "Successfully synced product attributes",
		ProductID:         productID,
		Categories:        categoryRefs(categories),
		AttributesCreated: len(created),
		AttributesUpdated: len(updated),
		AttributesTotal:   len(created) + len(updated),
		Created:           created,
		Updated:           updated,
	}, nil
}

func (s *syncService) Inspect(ctx context.Context, categoryID string) (*InspectResult, error) {
	categories, err := s.catalog.ListCategories(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	productsByCategory, err := s.catalog.ProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	var definitions []model.CategoryCustomAttribute
	if categoryID == "" {
		definitions, err = s.categoryAttrs.ListActive(ctx)
	} else {
		definitions, err = s.categoryAttrs.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	categoriesByID := make(map[string]model.ProductCategory, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}
	attributesByCategory := make(map[string][]model.CategoryCustomAttribute)
	for _, d := range definitions {
		attributesByCategory[d.CategoryID] = append(attributesByCategory[d.CategoryID], d)
	}

	// Union of category ids from both sides of the join.
	idSet := make(map[string]struct{})
	for id := range categoriesByID {
		idSet[id] = struct{}{}
	}
	for id := range attributesByCategory {
		idSet[id] = struct{}{}
	}
	allIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		allIDs = append(allIDs, id)
	}
	sort.Strings(allIDs)

	result := make([]InspectEntry, 0, len(allIDs))
	productsCount := 0
	attributesCount := 0
	for _, id := range allIDs {
		category, ok := categoriesByID[id]
		if !ok {
			category = model.ProductCategory{ID: id}
		}
		products := productsByCategory[id]
		if products == nil {
			products = []model.Product{}
		}
		attrs := attributesByCategory[id]
		if attrs == nil {
			attrs = []model.CategoryCustomAttribute{}
		}
		productsCount += len(products)
		attributesCount += len(attrs)
		result = append(result, InspectEntry{
			Category:   category,
			Products:   products,
			Attributes: attrs,
		})
	}

	res := &InspectResult{
		Result:          result,
		CategoriesCount: len(allIDs),
		ProductsCount:   productsCount,
		AttributesCount: attributesCount,
	}
	if categoryID != "" {
		res.CategoryID = &categoryID
	}
	return res, nil
}

func emptySyncResult(productID string, categories []model.ProductCategory, message string) *SyncResult {
	return &SyncResult{
		Message:    message,
		ProductID:  productID,
		Categories: categoryRefs(categories),
		Created:    []SyncAttribute{},
		Updated:    []SyncAttribute{},
	}
}

func categoryRefs(categories []model.ProductCategory) []CategoryRef {
	refs := make([]CategoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, CategoryRef{ID: c.ID, Name: c.Name})
	}
	return refs
}
