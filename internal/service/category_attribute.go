package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"attrapi/internal/model"
	"attrapi/internal/repository"
)

var (
	ErrLabelRequired       = errors.New("label is required")
	ErrTypeRequired        = errors.New("type is required")
	ErrIDRequired          = errors.New("id is required")
	ErrAttributeIDRequired = errors.New("category_custom_attribute_id is required")
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveAttributeKey turns a human label into the machine slug stored as the
// definition's key: lower-cased, with each run of whitespace collapsed to a
// single hyphen. The key is derived once at creation and never re-derived on
// rename.
func DeriveAttributeKey(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "-")
}

// CreateCategoryAttributeInput is the input for creating a definition.
type CreateCategoryAttributeInput struct {
	Label      string
	Type       string
	CategoryID string
}

// UpdateCategoryAttributeInput is a partial update; nil fields are untouched.
// A non-nil DeletedAt soft-deletes the definition.
type UpdateCategoryAttributeInput struct {
	ID        string
	Label     *string
	Type      *string
	DeletedAt *time.Time
}

// CategoryAttributeService defines the use cases for category attribute
// definitions.
type CategoryAttributeService interface {
	// Create derives the key from the label and persists a new definition.
	Create(ctx context.Context, in CreateCategoryAttributeInput) (*model.CategoryCustomAttribute, error)

	// Update writes only the supplied fields of an existing definition.
	Update(ctx context.Context, in UpdateCategoryAttributeInput) (*model.CategoryCustomAttribute, error)

	// List returns the active definitions for a category; empty slice when
	// there are none.
	List(ctx context.Context, categoryID string) ([]model.CategoryCustomAttribute, error)
}

type categoryAttributeService struct {
	repo repository.CategoryAttributeRepository
}

// NewCategoryAttributeService constructs a new CategoryAttributeService.
func NewCategoryAttributeService(repo repository.CategoryAttributeRepository) CategoryAttributeService {
	return &categoryAttributeService{repo: repo}
}

func (s *categoryAttributeService) Create(ctx context.Context, in CreateCategoryAttributeInput) (*model.CategoryCustomAttribute, error) {
	var created *model.CategoryCustomAttribute
	steps := []step{
		{
			name: "validate-category-attribute-inputs",
			invoke: func(ctx context.Context) error {
				if in.Label == "" {
					return ErrLabelRequired
				}
				if in.Type == "" {
					return ErrTypeRequired
				}
				return nil
			},
		},
		{
			name: "create-category-custom-attribute",
			invoke: func(ctx context.Context) error {
				now := time.Now().UTC()
				attr := &model.CategoryCustomAttribute{
					ID:         "cca_" + uuid.NewString(),
					Key:        DeriveAttributeKey(in.Label),
					Label:      in.Label,
					Type:       in.Type,
					CategoryID: in.CategoryID,
					CreatedAt:  now,
					UpdatedAt:  now,
				}
				var err error
				created, err = s.repo.Create(ctx, attr)
				return err
			},
		},
	}
	if err := runSteps(ctx, steps); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *categoryAttributeService) Update(ctx context.Context, in UpdateCategoryAttributeInput) (*model.CategoryCustomAttribute, error) {
	if in.ID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.Update(ctx, repository.CategoryAttributeUpdate{
		ID:        in.ID,
		Label:     in.Label,
		Type:      in.Type,
		DeletedAt: in.DeletedAt,
	})
}

func (s *categoryAttributeService) List(ctx context.Context, categoryID string) ([]model.CategoryCustomAttribute, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}
