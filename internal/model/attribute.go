package model

import "time"

// Attribute types supported for category custom attributes.
// Text values are free-form; file values hold a fully-qualified URL to an
// uploaded object.
const (
	AttributeTypeText = "text"
	AttributeTypeFile = "file"
)

// CategoryCustomAttribute is a category-scoped attribute definition.
// These are pure domain models with no database-specific dependencies or tags,
// usable across layers (HTTP, service, repository) without coupling to persistence.
type CategoryCustomAttribute struct {
	ID         string     `json:"id"`
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Type       string     `json:"type"`
	CategoryID string     `json:"category_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

// ProductCustomAttribute is a product-scoped value for one definition.
type ProductCustomAttribute struct {
	ID                        string     `json:"id"`
	ProductID                 string     `json:"product_id"`
	Value                     string     `json:"value"`
	CategoryCustomAttributeID string     `json:"category_custom_attribute_id"`
	IsVisible                 bool       `json:"is_visible"`
	Options                   *string    `json:"options"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
	DeletedAt                 *time.Time `json:"deleted_at"`
}

// ProductCustomAttributeWithDefinition joins a value with its owning
// definition's last-known key/label/type. The join resolves even when the
// definition has been soft-deleted.
type ProductCustomAttributeWithDefinition struct {
	ProductCustomAttribute
	CategoryCustomAttribute CategoryCustomAttributeSummary `json:"category_custom_attribute"`
}

// CategoryCustomAttributeSummary is the definition subset embedded in value
// listings and sync reports.
type CategoryCustomAttributeSummary struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// ProductCategory is a platform-owned category row. This module only reads
// categories; it never creates or mutates them.
type ProductCategory struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// Product is a platform-owned product row, read-only here.
type Product struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}
