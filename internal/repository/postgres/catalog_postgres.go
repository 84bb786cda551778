package postgres

import (
	"context"
	"database/sql"

	"attrapi/internal/model"
	"attrapi/internal/repository"
)

// CatalogPostgres reads the platform-owned product_category, product and
// product_category_product tables. Strictly read-only: this module does not
// own that schema and never migrates or mutates it.
type CatalogPostgres struct {
	db *sql.DB
}

// NewCatalogPostgres creates a new CatalogPostgres repository.
func NewCatalogPostgres(db *sql.DB) *CatalogPostgres {
	return &CatalogPostgres{db: db}
}

var _ repository.CatalogRepository = (*CatalogPostgres)(nil)

// CategoriesForProduct returns the active categories the product belongs to.
func (r *CatalogPostgres) CategoriesForProduct(ctx context.Context, productID string) ([]model.ProductCategory, error) {
	const q = `
		SELECT pc.id, pc.name, pc.handle
		FROM product_category pc
		JOIN product_category_product pcp ON pcp.product_category_id = pc.id
		WHERE pcp.product_id = $1 AND pc.deleted_at IS NULL
		ORDER BY pc.id
	`
	rows, err := r.db.QueryContext(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategories(rows)
}

// ListCategories returns all active categories, or just one when categoryID is
// non-empty.
func (r *CatalogPostgres) ListCategories(ctx context.Context, categoryID string) ([]model.ProductCategory, error) {
	const qAll = `
		SELECT id, name, handle
		FROM product_category
		WHERE deleted_at IS NULL
		ORDER BY id
	`
	const qOne = `
		SELECT id, name, handle
		FROM product_category
		WHERE id = $1 AND deleted_at IS NULL
	`
	var (
		rows *sql.Rows
		err  error
	)
	if categoryID == "" {
		rows, err = r.db.QueryContext(ctx, qAll)
	} else {
		rows, err = r.db.QueryContext(ctx, qOne, categoryID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategories(rows)
}

// ProductsByCategory returns active products keyed by the category they belong
// to, across all categories or a single one.
func (r *CatalogPostgres) ProductsByCategory(ctx context.Context, categoryID string) (map[string][]model.Product, error) {
	const qAll = `
		SELECT pcp.product_category_id, p.id, p.title, p.handle
		FROM product p
		JOIN product_category_product pcp ON pcp.product_id = p.id
		WHERE p.deleted_at IS NULL
		ORDER BY pcp.product_category_id, p.id
	`
	const qOne = `
		SELECT pcp.product_category_id, p.id, p.title, p.handle
		FROM product p
		JOIN product_category_product pcp ON pcp.product_id = p.id
		WHERE pcp.product_category_id = $1 AND p.deleted_at IS NULL
		ORDER BY p.id
	`
	var (
		rows *sql.Rows
		err  error
	)
	if categoryID == "" {
		rows, err = r.db.QueryContext(ctx, qAll)
	} else {
		rows, err = r.db.QueryContext(ctx, qOne, categoryID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCategory := make(map[string][]model.Product)
	for rows.Next() {
		var (
			catID string
			p     model.Product
		)
		if err := rows.Scan(&catID, &p.ID, &p.Title, &p.Handle); err != nil {
			return nil, err
		}
		byCategory[catID] = append(byCategory[catID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return byCategory, nil
}

func collectCategories(rows *sql.Rows) ([]model.ProductCategory, error) {
	items := make([]model.ProductCategory, 0)
	for rows.Next() {
		var c model.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Handle); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
