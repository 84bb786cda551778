package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"attrapi/internal/model"
	"attrapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var productAttributeTestColumns = []string{"id", "product_id", "value", "category_custom_attribute_id", "is_visible", "options", "created_at", "updated_at", "deleted_at"}

func TestProductAttributePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProductAttributePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	attr := &model.ProductCustomAttribute{
		ID:                        "pca_test",
		ProductID:                 "prod_1",
		Value:                     "",
		CategoryCustomAttributeID: "cca_1",
		IsVisible:                 true,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	rows := sqlmock.NewRows(productAttributeTestColumns).
		AddRow(attr.ID, attr.ProductID, attr.Value, attr.CategoryCustomAttributeID, attr.IsVisible, nil, attr.CreatedAt, attr.UpdatedAt, nil)

	mock.ExpectQuery("INSERT INTO product_custom_attribute").
		WithArgs(attr.ID, attr.ProductID, attr.Value, attr.CategoryCustomAttributeID, attr.IsVisible, attr.CreatedAt, attr.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, attr)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, attr.ID, result.ID)
	assert.True(t, result.IsVisible)
	assert.Nil(t, result.Options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductAttributePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProductAttributePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("value and visibility", func(t *testing.T) {
		value := "Acme"
		visible := false
		rows := sqlmock.NewRows(productAttributeTestColumns).
			AddRow("pca_test", "prod_1", value, "cca_1", visible, nil, now, now, nil)

		mock.ExpectQuery("UPDATE product_custom_attribute SET updated_at = now\\(\\), value = \\$2, is_visible = \\$3 WHERE id = \\$1").
			WithArgs("pca_test", value, visible).
			WillReturnRows(rows)

		result, err := repo.Update(ctx, repository.ProductAttributeUpdate{ID: "pca_test", Value: &value, IsVisible: &visible})

		assert.NoError(t, err)
		assert.Equal(t, "Acme", result.Value)
		assert.False(t, result.IsVisible)
	})

	t.Run("soft delete", func(t *testing.T) {
		rows := sqlmock.NewRows(productAttributeTestColumns).
			AddRow("pca_test", "prod_1", "Acme", "cca_1", true, nil, now, now, now)

		mock.ExpectQuery("UPDATE product_custom_attribute SET updated_at = now\\(\\), deleted_at = \\$2 WHERE id = \\$1").
			WithArgs("pca_test", now).
			WillReturnRows(rows)

		result, err := repo.Update(ctx, repository.ProductAttributeUpdate{ID: "pca_test", DeletedAt: &now})

		assert.NoError(t, err)
		assert.NotNil(t, result.DeletedAt)
	})

	t.Run("missing row", func(t *testing.T) {
		value := "x"
		mock.ExpectQuery("UPDATE product_custom_attribute SET").
			WithArgs("pca_missing", value).
			WillReturnError(sql.ErrNoRows)

		result, err := repo.Update(ctx, repository.ProductAttributeUpdate{ID: "pca_missing", Value: &value})

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, result)
	})
}

func TestProductAttributePostgres_ListByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProductAttributePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	joined := []string{
		"id", "product_id", "value", "category_custom_attribute_id",
		"is_visible", "options", "created_at", "updated_at", "deleted_at",
		"cca_id", "key", "label", "type",
	}
	rows := sqlmock.NewRows(joined).
		AddRow("pca_1", "prod_1", "Acme", "cca_1", true, nil, now, now, nil, "cca_1", "brand", "Brand", "text").
		AddRow("pca_2", "prod_1", "", "cca_2", true, nil, now, now, now, "cca_2", "spec-sheet", "Spec Sheet", "file")

	mock.ExpectQuery("SELECT (.+) FROM product_custom_attribute pca JOIN category_custom_attribute cca").
		WithArgs("prod_1").
		WillReturnRows(rows)

	result, err := repo.ListByProduct(ctx, "prod_1")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "brand", result[0].CategoryCustomAttribute.Key)
	// Soft-deleted rows are returned as-is; callers decide how to filter.
	assert.NotNil(t, result[1].DeletedAt)
	assert.Equal(t, "Spec Sheet", result[1].CategoryCustomAttribute.Label)
}

func TestProductAttributePostgres_SoftDeleteByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProductAttributePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE product_custom_attribute SET deleted_at = now\\(\\), updated_at = now\\(\\) WHERE product_id = \\$1 AND deleted_at IS NULL").
		WithArgs("prod_1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.SoftDeleteByProduct(ctx, "prod_1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
