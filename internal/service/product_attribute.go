package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"attrapi/internal/model"
	"attrapi/internal/repository"
)

// CreateProductAttributeInput is the input for creating a value record.
// Value may be empty; users fill it in later.
type CreateProductAttributeInput struct {
	ProductID                 string
	CategoryCustomAttributeID string
	Value                     string
}

// UpdateProductAttributeInput is one entry of a batched partial update. Nil
// fields are untouched; a non-nil DeletedAt soft-deletes the value.
type UpdateProductAttributeInput struct {
	ID        string
	Value     *string
	IsVisible *bool
	DeletedAt *time.Time
}

// ProductAttributeService defines the use cases for product attribute values.
type ProductAttributeService interface {
	// Create persists a new value record tied to one definition. Runs as a
	// forward/compensate command; the compensation soft-deletes every value
	// for the product, not just the new one.
	Create(ctx context.Context, in CreateProductAttributeInput) (*model.ProductCustomAttribute, error)

	// UpdateBatch applies partial updates to one or more existing records.
	// Every entry must carry an id; the batch is rejected before any write
	// otherwise.
	UpdateBatch(ctx context.Context, items []UpdateProductAttributeInput) ([]model.ProductCustomAttribute, error)

	// Delete soft-deletes one value record by id.
	Delete(ctx context.Context, productID, attributeID string) error

	// List returns the product's value records joined with their definitions.
	// Soft-deleted rows are included; callers filter as needed.
	List(ctx context.Context, productID string) ([]model.ProductCustomAttributeWithDefinition, error)
}

type productAttributeService struct {
	repo repository.ProductAttributeRepository
}

// NewProductAttributeService constructs a new ProductAttributeService.
func NewProductAttributeService(repo repository.ProductAttributeRepository) ProductAttributeService {
	return &productAttributeService{repo: repo}
}

func (s *productAttributeService) Create(ctx context.Context, in CreateProductAttributeInput) (*model.ProductCustomAttribute, error) {
	var created *model.ProductCustomAttribute
	steps := []step{
		{
			name: "validate-product-attribute-inputs",
			invoke: func(ctx context.Context) error {
				if in.CategoryCustomAttributeID == "" {
					return ErrAttributeIDRequired
				}
				// Empty values are allowed; users can fill them later.
				return nil
			},
		},
		{
			name: "create-product-custom-attribute",
			invoke: func(ctx context.Context) error {
				now := time.Now().UTC()
				attr := &model.ProductCustomAttribute{
					ID:                        "pca_" + uuid.NewString(),
					ProductID:                 in.ProductID,
					Value:                     in.Value,
					CategoryCustomAttributeID: in.CategoryCustomAttributeID,
					IsVisible:                 true,
					CreatedAt:                 now,
					UpdatedAt:                 now,
				}
				var err error
				created, err = s.repo.Create(ctx, attr)
				return err
			},
			compensate: func(ctx context.Context) error {
				return s.repo.SoftDeleteByProduct(ctx, in.ProductID)
			},
		},
	}
	if err := runSteps(ctx, steps); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *productAttributeService) UpdateBatch(ctx context.Context, items []UpdateProductAttributeInput) ([]model.ProductCustomAttribute, error) {
	for _, item := range items {
		if item.ID == "" {
			return nil, ErrIDRequired
		}
	}

	updated := make([]model.ProductCustomAttribute, 0, len(items))
	for _, item := range items {
		attr, err := s.repo.Update(ctx, repository.ProductAttributeUpdate{
			ID:        item.ID,
			Value:     item.Value,
			IsVisible: item.IsVisible,
			DeletedAt: item.DeletedAt,
		})
		if err != nil {
			return nil, err
		}
		updated = append(updated, *attr)
	}
	return updated, nil
}

func (s *productAttributeService) Delete(ctx context.Context, productID, attributeID string) error {
	if attributeID == "" {
		return ErrIDRequired
	}
	now := time.Now().UTC()
	_, err := s.UpdateBatch(ctx, []UpdateProductAttributeInput{
		{ID: attributeID, DeletedAt: &now},
	})
	return err
}

func (s *productAttributeService) List(ctx context.Context, productID string) ([]model.ProductCustomAttributeWithDefinition, error) {
	if productID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByProduct(ctx, productID)
}
