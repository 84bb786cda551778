package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"attrapi/internal/model"
	repoMocks "attrapi/internal/repository/mocks"
	"attrapi/internal/service"
	svcMocks "attrapi/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncFixture() (*svcMocks.MockProductAttributeService, *repoMocks.MockCatalogRepository, *repoMocks.MockCategoryAttributeRepository, *repoMocks.MockProductAttributeRepository, service.SyncService) {
	mProductSvc := new(svcMocks.MockProductAttributeService)
	mCatalog := new(repoMocks.MockCatalogRepository)
	mCategoryAttrs := new(repoMocks.MockCategoryAttributeRepository)
	mValues := new(repoMocks.MockProductAttributeRepository)
	svc := service.NewSyncService(mCatalog, mCategoryAttrs, mValues, mProductSvc)
	return mProductSvc, mCatalog, mCategoryAttrs, mValues, svc
}

func TestSyncService_SyncProduct(t *testing.T) {
	ctx := context.Background()

	electronics := model.ProductCategory{ID: "pcat_1", Name: "Electronics", Handle: "electronics"}
	brand := model.CategoryCustomAttribute{ID: "cca_brand", Key: "brand", Label: "Brand", Type: model.AttributeTypeText, CategoryID: "pcat_1"}
	specSheet := model.CategoryCustomAttribute{ID: "cca_spec", Key: "spec-sheet", Label: "Spec Sheet", Type: model.AttributeTypeFile, CategoryID: "pcat_1"}

	t.Run("product id required", func(t *testing.T) {
		_, _, _, _, svc := newSyncFixture()

		res, err := svc.SyncProduct(ctx, "")

		assert.ErrorIs(t, err, service.ErrIDRequired)
		assert.Nil(t, res)
	})

	t.Run("zero categories is an empty result, not an error", func(t *testing.T) {
		mProductSvc, mCatalog, mCategoryAttrs, _, svc := newSyncFixture()

		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return([]model.ProductCategory{}, nil)

		res, err := svc.SyncProduct(ctx, "prod_1")

		require.NoError(t, err)
		assert.Equal(t, "No categories found for this product", res.Message)
		assert.Empty(t, res.Categories)
		assert.Zero(t, res.AttributesTotal)
		assert.Empty(t, res.Created)
		assert.Empty(t, res.Updated)
		mCategoryAttrs.AssertNotCalled(t, "ListByCategoryIDs")
		mProductSvc.AssertNotCalled(t, "Create")
	})

	t.Run("zero definitions still lists the categories", func(t *testing.T) {
		mProductSvc, mCatalog, mCategoryAttrs, _, svc := newSyncFixture()

		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return([]model.ProductCategory{electronics}, nil)
		mCategoryAttrs.On("ListByCategoryIDs", ctx, []string{"pcat_1"}).Return([]model.CategoryCustomAttribute{}, nil)

		res, err := svc.SyncProduct(ctx, "prod_1")

		require.NoError(t, err)
		assert.Equal(t, "No attributes found for this product's categories", res.Message)
		assert.Equal(t, []service.CategoryRef{{ID: "pcat_1", Name: "Electronics"}}, res.Categories)
		assert.Zero(t, res.AttributesTotal)
		mProductSvc.AssertNotCalled(t, "Create")
	})

	t.Run("first sync creates empty values for all definitions", func(t *testing.T) {
		mProductSvc, mCatalog, mCategoryAttrs, mValues, svc := newSyncFixture()

		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return([]model.ProductCategory{electronics}, nil)
		mCategoryAttrs.On("ListByCategoryIDs", ctx, []string{"pcat_1"}).
			Return([]model.CategoryCustomAttribute{brand, specSheet}, nil)
		mValues.On("ListByProduct", ctx, "prod_1").Return([]model.ProductCustomAttributeWithDefinition{}, nil)

		mProductSvc.On("Create", ctx, service.CreateProductAttributeInput{ProductID: "prod_1", CategoryCustomAttributeID: "cca_brand", Value: ""}).
			Return(&model.ProductCustomAttribute{ID: "pca_1", CategoryCustomAttributeID: "cca_brand"}, nil)
		mProductSvc.On("Create", ctx, service.CreateProductAttributeInput{ProductID: "prod_1", CategoryCustomAttributeID: "cca_spec", Value: ""}).
			Return(&model.ProductCustomAttribute{ID: "pca_2", CategoryCustomAttributeID: "cca_spec"}, nil)

		res, err := svc.SyncProduct(ctx, "prod_1")

		require.NoError(t, err)
		assert.Equal(t, "Successfully synced product attributes", res.Message)
		assert.Equal(t, 2, res.AttributesCreated)
		assert.Equal(t, 0, res.AttributesUpdated)
		assert.Equal(t, 2, res.AttributesTotal)
		require.Len(t, res.Created, 2)
		for _, entry := range res.Created {
			assert.Equal(t, "", entry.Value)
		}
		assert.Equal(t, service.SyncAttributeDefinition{Key: "brand", Label: "Brand"}, res.Created[0].CategoryCustomAttribute)
		mProductSvc.AssertExpectations(t)
	})

	t.Run("second sync reports existing values as updated without mutation", func(t *testing.T) {
		mProductSvc, mCatalog, mCategoryAttrs, mValues, svc := newSyncFixture()

		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return([]model.ProductCategory{electronics}, nil)
		mCategoryAttrs.On("ListByCategoryIDs", ctx, []string{"pcat_1"}).
			Return([]model.CategoryCustomAttribute{brand, specSheet}, nil)
		mValues.On("ListByProduct", ctx, "prod_1").Return([]model.ProductCustomAttributeWithDefinition{
			{ProductCustomAttribute: model.ProductCustomAttribute{ID: "pca_1", CategoryCustomAttributeID: "cca_brand", Value: "Acme"}},
			{ProductCustomAttribute: model.ProductCustomAttribute{ID: "pca_2", CategoryCustomAttributeID: "cca_spec", Value: ""}},
		}, nil)

		res, err := svc.SyncProduct(ctx, "prod_1")

		require.NoError(t, err)
		assert.Equal(t, 0, res.AttributesCreated)
		assert.Equal(t, 2, res.AttributesUpdated)
		assert.Equal(t, 2, res.AttributesTotal)
		assert.Equal(t, "Acme", res.Updated[0].Value)
		mProductSvc.AssertNotCalled(t, "Create")
	})

	t.Run("soft-deleted values count as missing", func(t *testing.T) {
		mProductSvc, mCatalog, mCategoryAttrs, mValues, svc := newSyncFixture()

		now := time.Now().UTC()
		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return([]model.ProductCategory{electronics}, nil)
		mCategoryAttrs.On("ListByCategoryIDs", ctx, []string{"pcat_1"}).
			Return([]model.CategoryCustomAttribute{brand}, nil)
		mValues.On("ListByProduct", ctx, "prod_1").Return([]model.ProductCustomAttributeWithDefinition{
			{ProductCustomAttribute: model.ProductCustomAttribute{ID: "pca_old", CategoryCustomAttributeID: "cca_brand", DeletedAt: &now}},
		}, nil)
		mProductSvc.On("Create", ctx, service.CreateProductAttributeInput{ProductID: "prod_1", CategoryCustomAttributeID: "cca_brand", Value: ""}).
			Return(&model.ProductCustomAttribute{ID: "pca_new"}, nil)

		res, err := svc.SyncProduct(ctx, "prod_1")

		require.NoError(t, err)
		assert.Equal(t, 1, res.AttributesCreated)
		assert.Equal(t, 0, res.AttributesUpdated)
		mProductSvc.AssertExpectations(t)
	})

	t.Run("per-definition create failure yields fallback id, not an abort", func(t *testing.T) {
		mProductSvc, mCatalog, mCategoryAttrs, mValues, svc := newSyncFixture()

		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return([]model.ProductCategory{electronics}, nil)
		mCategoryAttrs.On("ListByCategoryIDs", ctx, []string{"pcat_1"}).
			Return([]model.CategoryCustomAttribute{brand, specSheet}, nil)
		mValues.On("ListByProduct", ctx, "prod_1").Return([]model.ProductCustomAttributeWithDefinition{}, nil)

		mProductSvc.On("Create", ctx, service.CreateProductAttributeInput{ProductID: "prod_1", CategoryCustomAttributeID: "cca_brand", Value: ""}).
			Return(nil, errors.New("db fail"))
		mProductSvc.On("Create", ctx, service.CreateProductAttributeInput{ProductID: "prod_1", CategoryCustomAttributeID: "cca_spec", Value: ""}).
			Return(&model.ProductCustomAttribute{ID: "pca_2"}, nil)

		res, err := svc.SyncProduct(ctx, "prod_1")

		require.NoError(t, err)
		assert.Equal(t, 2, res.AttributesCreated)
		assert.True(t, strings.HasPrefix(res.Created[0].ID, "pca_fallback_"))
		assert.Equal(t, "pca_2", res.Created[1].ID)
		mProductSvc.AssertExpectations(t)
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		_, mCatalog, _, _, svc := newSyncFixture()

		mCatalog.On("CategoriesForProduct", ctx, "prod_1").Return(nil, errors.New("db fail"))

		res, err := svc.SyncProduct(ctx, "prod_1")

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestSyncService_Inspect(t *testing.T) {
	ctx := context.Background()

	t.Run("full join includes categories present on either side", func(t *testing.T) {
		_, mCatalog, mCategoryAttrs, _, svc := newSyncFixture()

		mCatalog.On("ListCategories", ctx, "").Return([]model.ProductCategory{
			{ID: "pcat_1", Name: "Electronics", Handle: "electronics"},
			{ID: "pcat_2", Name: "Apparel", Handle: "apparel"},
		}, nil)
		mCatalog.On("ProductsByCategory", ctx, "").Return(map[string][]model.Product{
			"pcat_1": {{ID: "prod_1", Title: "Widget"}, {ID: "prod_2", Title: "Gadget"}},
		}, nil)
		mCategoryAttrs.On("ListActive", ctx).Return([]model.CategoryCustomAttribute{
			{ID: "cca_1", CategoryID: "pcat_1", Key: "brand"},
			{ID: "cca_2", CategoryID: "pcat_ghost", Key: "orphaned"},
		}, nil)

		res, err := svc.Inspect(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, 3, res.CategoriesCount)
		assert.Equal(t, 2, res.ProductsCount)
		assert.Equal(t, 2, res.AttributesCount)
		assert.Nil(t, res.ProductID)
		assert.Nil(t, res.CategoryID)

		byID := make(map[string]service.InspectEntry)
		for _, entry := range res.Result {
			byID[entry.Category.ID] = entry
		}
		assert.Len(t, byID["pcat_1"].Products, 2)
		assert.Len(t, byID["pcat_1"].Attributes, 1)
		assert.Empty(t, byID["pcat_2"].Products)
		assert.Empty(t, byID["pcat_2"].Attributes)
		// Attribute-only category appears with bare id and empty products.
		assert.Equal(t, "", byID["pcat_ghost"].Category.Name)
		assert.Len(t, byID["pcat_ghost"].Attributes, 1)
	})

	t.Run("category filter is echoed and scopes the queries", func(t *testing.T) {
		_, mCatalog, mCategoryAttrs, _, svc := newSyncFixture()

		mCatalog.On("ListCategories", ctx, "pcat_1").Return([]model.ProductCategory{
			{ID: "pcat_1", Name: "Electronics"},
		}, nil)
		mCatalog.On("ProductsByCategory", ctx, "pcat_1").Return(map[string][]model.Product{}, nil)
		mCategoryAttrs.On("ListByCategory", ctx, "pcat_1").Return([]model.CategoryCustomAttribute{}, nil)

		res, err := svc.Inspect(ctx, "pcat_1")

		require.NoError(t, err)
		require.NotNil(t, res.CategoryID)
		assert.Equal(t, "pcat_1", *res.CategoryID)
		assert.Equal(t, 1, res.CategoriesCount)
		mCategoryAttrs.AssertNotCalled(t, "ListActive")
	})
}
