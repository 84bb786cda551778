package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"attrapi/internal/service"
)

// SyncAttributes handles GET /admin/product/sync.
//
// With product_id it reconciles the product against its categories'
// definitions, creating empty-valued records where missing. Without
// product_id it returns the full-join inspection report across categories,
// products and definitions, optionally filtered by category_id.
//
// @Summary Sync a product's attributes, or inspect the category/attribute join
// @Tags sync
// @Produce json
// @Param product_id query string false "Product to reconcile"
// @Param category_id query string false "Category filter for the inspection report"
// @Success 200 {object} service.SyncResult
// @Router /admin/product/sync [get]
func SyncAttributes(svc service.SyncService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Query("product_id")
		categoryID := c.Query("category_id")

		if productID != "" {
			res, err := svc.SyncProduct(c.UserContext(), productID)
			if err != nil {
				if errors.Is(err, service.ErrIDRequired) {
					return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "product_id is required")
				}
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "an error occurred while syncing product attributes")
			}
			return c.JSON(res)
		}

		res, err := svc.Inspect(c.UserContext(), categoryID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "an error occurred while syncing product attributes")
		}
		return c.JSON(res)
	}
}
