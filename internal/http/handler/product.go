package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"attrapi/internal/service"
)

type createProductAttributeRequest struct {
	CategoryCustomAttributeID string `json:"category_custom_attribute_id"`
	Value                     string `json:"value"`
}

type updateProductAttributeItem struct {
	ID        string  `json:"id"`
	Value     *string `json:"value"`
	IsVisible *bool   `json:"is_visible"`
	DeletedAt *string `json:"deleted_at"`
}

type updateProductAttributesRequest struct {
	ProductCustomAttributes []updateProductAttributeItem `json:"product_custom_attributes"`
}

// CreateProductAttribute handles POST /admin/product/:id/custom-attributes.
// An omitted value is stored as the empty string; users fill it in later.
//
// @Summary Create a product custom attribute value
// @Tags product-custom-attributes
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body createProductAttributeRequest true "Attribute value"
// @Success 200 {object} map[string]model.ProductCustomAttribute
// @Router /admin/product/{id}/custom-attributes [post]
func CreateProductAttribute(svc service.ProductAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createProductAttributeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		attr, err := svc.Create(c.UserContext(), service.CreateProductAttributeInput{
			ProductID:                 c.Params("id"),
			CategoryCustomAttributeID: req.CategoryCustomAttributeID,
			Value:                     req.Value,
		})
		if err != nil {
			if errors.Is(err, service.ErrAttributeIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "ATTRIBUTE_ID_REQUIRED", "required attribute category_custom_attribute_id is missing")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"productCustomAttribute": attr})
	}
}

// ListProductAttributes handles GET /admin/product/:id/custom-attributes.
// Rows are joined with their owning definition. deleted_at is not filtered
// here; the admin UI filters client-side.
//
// @Summary List custom attribute values for a product
// @Tags product-custom-attributes
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string][]model.ProductCustomAttributeWithDefinition
// @Router /admin/product/{id}/custom-attributes [get]
func ListProductAttributes(svc service.ProductAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		attrs, err := svc.List(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"product_custom_attributes": attrs})
	}
}

// UpdateProductAttributes handles PATCH /admin/product/:id/custom-attributes.
// The body must carry a product_custom_attributes array and every entry must
// have an id; otherwise the whole batch is rejected and nothing is written.
//
// @Summary Batch-update product custom attribute values
// @Tags product-custom-attributes
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body updateProductAttributesRequest true "Entries to update"
// @Success 200 {object} map[string][]model.ProductCustomAttribute
// @Router /admin/product/{id}/custom-attributes [patch]
func UpdateProductAttributes(svc service.ProductAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateProductAttributesRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body, expected a product_custom_attributes array")
		}
		if req.ProductCustomAttributes == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body, expected a product_custom_attributes array")
		}

		items := make([]service.UpdateProductAttributeInput, 0, len(req.ProductCustomAttributes))
		for _, item := range req.ProductCustomAttributes {
			if item.ID == "" {
				return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "each item in product_custom_attributes must have an id")
			}
			deletedAt, err := parseDeletedAt(item.DeletedAt)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DELETED_AT", "deleted_at must be an RFC 3339 timestamp")
			}
			items = append(items, service.UpdateProductAttributeInput{
				ID:        item.ID,
				Value:     item.Value,
				IsVisible: item.IsVisible,
				DeletedAt: deletedAt,
			})
		}

		updated, err := svc.UpdateBatch(c.UserContext(), items)
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "each item in product_custom_attributes must have an id")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"productCustomAttribute": updated})
	}
}

// DeleteProductAttribute handles DELETE /admin/product/:id/custom-attributes.
// The attribute id comes as a query parameter; deletion is a soft delete.
//
// @Summary Soft-delete a product custom attribute value
// @Tags product-custom-attributes
// @Produce json
// @Param id path string true "Product ID"
// @Param id query string true "Attribute ID"
// @Success 200 {object} map[string]any
// @Router /admin/product/{id}/custom-attributes [delete]
func DeleteProductAttribute(svc service.ProductAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		attributeID := c.Query("id")
		if attributeID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "attribute id is required")
		}

		if err := svc.Delete(c.UserContext(), c.Params("id"), attributeID); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"id":      attributeID,
			"object":  "product_custom_attribute",
			"deleted": true,
		})
	}
}
