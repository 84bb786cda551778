package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"attrapi/internal/model"
	"attrapi/internal/repository"
	repoMocks "attrapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductAttributeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path with empty value", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(attr *model.ProductCustomAttribute) bool {
			return strings.HasPrefix(attr.ID, "pca_") &&
				attr.ProductID == "prod_1" &&
				attr.CategoryCustomAttributeID == "cca_1" &&
				attr.Value == "" &&
				attr.IsVisible
		})).Return(&model.ProductCustomAttribute{ID: "pca_1"}, nil)

		attr, err := svc.Create(ctx, CreateProductAttributeInput{
			ProductID:                 "prod_1",
			CategoryCustomAttributeID: "cca_1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "pca_1", attr.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing definition id", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		attr, err := svc.Create(ctx, CreateProductAttributeInput{ProductID: "prod_1"})

		assert.ErrorIs(t, err, ErrAttributeIDRequired)
		assert.Nil(t, attr)
		mRepo.AssertNotCalled(t, "Create")
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		attr, err := svc.Create(ctx, CreateProductAttributeInput{
			ProductID:                 "prod_1",
			CategoryCustomAttributeID: "cca_1",
		})

		assert.Error(t, err)
		assert.Nil(t, attr)
		mRepo.AssertExpectations(t)
	})
}

func TestProductAttributeService_UpdateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects batch before any write when an entry lacks id", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		value := "x"
		updated, err := svc.UpdateBatch(ctx, []UpdateProductAttributeInput{
			{ID: "pca_1", Value: &value},
			{Value: &value},
		})

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, updated)
		mRepo.AssertNotCalled(t, "Update")
	})

	t.Run("applies partial updates per entry", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		value := "blue"
		visible := false
		mRepo.On("Update", ctx, repository.ProductAttributeUpdate{ID: "pca_1", Value: &value}).
			Return(&model.ProductCustomAttribute{ID: "pca_1", Value: "blue"}, nil)
		mRepo.On("Update", ctx, repository.ProductAttributeUpdate{ID: "pca_2", IsVisible: &visible}).
			Return(&model.ProductCustomAttribute{ID: "pca_2", IsVisible: false}, nil)

		updated, err := svc.UpdateBatch(ctx, []UpdateProductAttributeInput{
			{ID: "pca_1", Value: &value},
			{ID: "pca_2", IsVisible: &visible},
		})

		assert.NoError(t, err)
		assert.Len(t, updated, 2)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error aborts", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		mRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		value := "x"
		updated, err := svc.UpdateBatch(ctx, []UpdateProductAttributeInput{{ID: "pca_1", Value: &value}})

		assert.Error(t, err)
		assert.Nil(t, updated)
	})
}

func TestProductAttributeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("id required", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		err := svc.Delete(ctx, "prod_1", "")

		assert.ErrorIs(t, err, ErrIDRequired)
		mRepo.AssertNotCalled(t, "Update")
	})

	t.Run("soft deletes by setting deleted_at", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		mRepo.On("Update", ctx, mock.MatchedBy(func(upd repository.ProductAttributeUpdate) bool {
			return upd.ID == "pca_1" &&
				upd.DeletedAt != nil &&
				time.Since(*upd.DeletedAt) < time.Minute &&
				upd.Value == nil &&
				upd.IsVisible == nil
		})).Return(&model.ProductCustomAttribute{ID: "pca_1"}, nil)

		err := svc.Delete(ctx, "prod_1", "pca_1")

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})
}

func TestProductAttributeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("product id required", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		items, err := svc.List(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, items)
	})

	t.Run("returns rows including soft-deleted ones", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductAttributeRepository)
		svc := NewProductAttributeService(mRepo)

		now := time.Now().UTC()
		rows := []model.ProductCustomAttributeWithDefinition{
			{ProductCustomAttribute: model.ProductCustomAttribute{ID: "pca_1"}},
			{ProductCustomAttribute: model.ProductCustomAttribute{ID: "pca_2", DeletedAt: &now}},
		}
		mRepo.On("ListByProduct", ctx, "prod_1").Return(rows, nil)

		items, err := svc.List(ctx, "prod_1")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		mRepo.AssertExpectations(t)
	})
}
