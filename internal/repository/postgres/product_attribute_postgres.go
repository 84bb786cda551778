package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"attrapi/internal/model"
	"attrapi/internal/repository"
)

// ProductAttributePostgres is a PostgreSQL implementation of
// repository.ProductAttributeRepository.
type ProductAttributePostgres struct {
	db *sql.DB
}

// NewProductAttributePostgres creates a new ProductAttributePostgres repository.
func NewProductAttributePostgres(db *sql.DB) *ProductAttributePostgres {
	return &ProductAttributePostgres{db: db}
}

var _ repository.ProductAttributeRepository = (*ProductAttributePostgres)(nil)

const productAttributeColumns = "id, product_id, value, category_custom_attribute_id, is_visible, options, created_at, updated_at, deleted_at"

// Create inserts a new value row and returns the stored record.
func (r *ProductAttributePostgres) Create(ctx context.Context, attr *model.ProductCustomAttribute) (*model.ProductCustomAttribute, error) {
	const q = `
		INSERT INTO product_custom_attribute (id, product_id, value, category_custom_attribute_id, is_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productAttributeColumns
	row := r.db.QueryRowContext(ctx, q,
		attr.ID,
		attr.ProductID,
		attr.Value,
		attr.CategoryCustomAttributeID,
		attr.IsVisible,
		attr.CreatedAt,
		attr.UpdatedAt,
	)
	return scanProductAttribute(row)
}

// Update writes only the supplied fields and bumps updated_at.
func (r *ProductAttributePostgres) Update(ctx context.Context, upd repository.ProductAttributeUpdate) (*model.ProductCustomAttribute, error) {
	sets := []string{"updated_at = now()"}
	args := []any{upd.ID}
	if upd.Value != nil {
		args = append(args, *upd.Value)
		sets = append(sets, fmt.Sprintf("value = $%d", len(args)))
	}
	if upd.IsVisible != nil {
		args = append(args, *upd.IsVisible)
		sets = append(sets, fmt.Sprintf("is_visible = $%d", len(args)))
	}
	if upd.DeletedAt != nil {
		args = append(args, *upd.DeletedAt)
		sets = append(sets, fmt.Sprintf("deleted_at = $%d", len(args)))
	}

	q := `UPDATE product_custom_attribute SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + productAttributeColumns
	row := r.db.QueryRowContext(ctx, q, args...)
	return scanProductAttribute(row)
}

// ListByProduct returns every value row for the product joined with its
// definition. The join ignores the definition's deleted_at so soft-deleted
// definitions still resolve their last-known key/label/type.
func (r *ProductAttributePostgres) ListByProduct(ctx context.Context, productID string) ([]model.ProductCustomAttributeWithDefinition, error) {
	const q = `
		SELECT pca.id, pca.product_id, pca.value, pca.category_custom_attribute_id,
		       pca.is_visible, pca.options, pca.created_at, pca.updated_at, pca.deleted_at,
		       cca.id, cca.key, cca.label, cca.type
		FROM product_custom_attribute pca
		JOIN category_custom_attribute cca ON cca.id = pca.category_custom_attribute_id
		WHERE pca.product_id = $1
		ORDER BY pca.created_at, pca.id
	`
	rows, err := r.db.QueryContext(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductCustomAttributeWithDefinition, 0)
	for rows.Next() {
		var item model.ProductCustomAttributeWithDefinition
		if err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Value,
			&item.CategoryCustomAttributeID,
			&item.IsVisible,
			&item.Options,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.DeletedAt,
			&item.CategoryCustomAttribute.ID,
			&item.CategoryCustomAttribute.Key,
			&item.CategoryCustomAttribute.Label,
			&item.CategoryCustomAttribute.Type,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SoftDeleteByProduct marks all active value rows for the product as deleted.
func (r *ProductAttributePostgres) SoftDeleteByProduct(ctx context.Context, productID string) error {
	const q = `
		UPDATE product_custom_attribute
		SET deleted_at = now(), updated_at = now()
		WHERE product_id = $1 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, q, productID)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanProductAttribute(row rowScanner) (*model.ProductCustomAttribute, error) {
	var a model.ProductCustomAttribute
	if err := row.Scan(
		&a.ID,
		&a.ProductID,
		&a.Value,
		&a.CategoryCustomAttributeID,
		&a.IsVisible,
		&a.Options,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
