package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"attrapi/internal/model"
	"attrapi/internal/repository"
)

// CategoryAttributePostgres is a PostgreSQL implementation of
// repository.CategoryAttributeRepository. It uses database/sql with
// parameterized queries and contains no business logic.
type CategoryAttributePostgres struct {
	db *sql.DB
}

// NewCategoryAttributePostgres creates a new CategoryAttributePostgres repository.
func NewCategoryAttributePostgres(db *sql.DB) *CategoryAttributePostgres {
	return &CategoryAttributePostgres{db: db}
}

var _ repository.CategoryAttributeRepository = (*CategoryAttributePostgres)(nil)

const categoryAttributeColumns = "id, key, label, type, category_id, created_at, updated_at, deleted_at"

// Create inserts a new definition row and returns the stored record.
func (r *CategoryAttributePostgres) Create(ctx context.Context, attr *model.CategoryCustomAttribute) (*model.CategoryCustomAttribute, error) {
	const q = `
		INSERT INTO category_custom_attribute (id, key, label, type, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + categoryAttributeColumns
	row := r.db.QueryRowContext(ctx, q,
		attr.ID,
		attr.Key,
		attr.Label,
		attr.Type,
		attr.CategoryID,
		attr.CreatedAt,
		attr.UpdatedAt,
	)
	return scanCategoryAttribute(row)
}

// Update writes only the supplied fields and bumps updated_at.
func (r *CategoryAttributePostgres) Update(ctx context.Context, upd repository.CategoryAttributeUpdate) (*model.CategoryCustomAttribute, error) {
	sets := []string{"updated_at = now()"}
	args := []any{upd.ID}
	if upd.Label != nil {
		args = append(args, *upd.Label)
		sets = append(sets, fmt.Sprintf("label = $%d", len(args)))
	}
	if upd.Type != nil {
		args = append(args, *upd.Type)
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)))
	}
	if upd.DeletedAt != nil {
		args = append(args, *upd.DeletedAt)
		sets = append(sets, fmt.Sprintf("deleted_at = $%d", len(args)))
	}

	q := `UPDATE category_custom_attribute SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + categoryAttributeColumns
	row := r.db.QueryRowContext(ctx, q, args...)
	return scanCategoryAttribute(row)
}

// ListByCategory returns active definitions for one category.
func (r *CategoryAttributePostgres) ListByCategory(ctx context.Context, categoryID string) ([]model.CategoryCustomAttribute, error) {
	const q = `
		SELECT ` + categoryAttributeColumns + `
		FROM category_custom_attribute
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategoryAttributes(rows)
}

// ListByCategoryIDs returns active definitions across a set of categories.
// The IN clause is built with positional placeholders since database/sql has
// no native slice binding.
func (r *CategoryAttributePostgres) ListByCategoryIDs(ctx context.Context, categoryIDs []string) ([]model.CategoryCustomAttribute, error) {
	if len(categoryIDs) == 0 {
		return []model.CategoryCustomAttribute{}, nil
	}
	placeholders := make([]string, len(categoryIDs))
	args := make([]any, len(categoryIDs))
	for i, id := range categoryIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := `
		SELECT ` + categoryAttributeColumns + `
		FROM category_custom_attribute
		WHERE category_id IN (` + strings.Join(placeholders, ", ") + `) AND deleted_at IS NULL
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategoryAttributes(rows)
}

// ListActive returns every active definition.
func (r *CategoryAttributePostgres) ListActive(ctx context.Context) ([]model.CategoryCustomAttribute, error) {
	const q = `
		SELECT ` + categoryAttributeColumns + `
		FROM category_custom_attribute
		WHERE deleted_at IS NULL
		ORDER BY category_id, created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategoryAttributes(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategoryAttribute(row rowScanner) (*model.CategoryCustomAttribute, error) {
	var a model.CategoryCustomAttribute
	if err := row.Scan(
		&a.ID,
		&a.Key,
		&a.Label,
		&a.Type,
		&a.CategoryID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectCategoryAttributes(rows *sql.Rows) ([]model.CategoryCustomAttribute, error) {
	items := make([]model.CategoryCustomAttribute, 0)
	for rows.Next() {
		a, err := scanCategoryAttribute(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
