package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"attrapi/internal/model"
	"attrapi/internal/service"
)

type createCategoryAttributeRequest struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

type updateCategoryAttributeRequest struct {
	ID        string  `json:"id"`
	Label     *string `json:"label"`
	Type      *string `json:"type"`
	DeletedAt *string `json:"deleted_at"`
}

// CreateCategoryAttribute handles POST /admin/category/:id/custom-attributes.
//
// @Summary Create a category custom attribute definition
// @Tags category-custom-attributes
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param body body createCategoryAttributeRequest true "Attribute definition"
// @Success 200 {object} map[string]model.CategoryCustomAttribute
// @Router /admin/category/{id}/custom-attributes [post]
func CreateCategoryAttribute(svc service.CategoryAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createCategoryAttributeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Type == "" {
			req.Type = model.AttributeTypeText
		}

		attr, err := svc.Create(c.UserContext(), service.CreateCategoryAttributeInput{
			Label:      req.Label,
			Type:       req.Type,
			CategoryID: c.Params("id"),
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrLabelRequired):
				return writeError(c, fiber.StatusBadRequest, "LABEL_REQUIRED", "required attribute label is missing")
			case errors.Is(err, service.ErrTypeRequired):
				return writeError(c, fiber.StatusBadRequest, "TYPE_REQUIRED", "required attribute type is missing")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{"categoryCustomAttribute": attr})
	}
}

// ListCategoryAttributes handles GET /admin/category/:id/custom-attributes.
// Soft-deleted definitions are excluded.
//
// @Summary List active custom attribute definitions for a category
// @Tags category-custom-attributes
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string][]model.CategoryCustomAttribute
// @Router /admin/category/{id}/custom-attributes [get]
func ListCategoryAttributes(svc service.CategoryAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		attrs, err := svc.List(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"category_custom_attributes": attrs})
	}
}

// UpdateCategoryAttribute handles PATCH /admin/category/:id/custom-attributes.
// Only supplied fields are written; a deleted_at timestamp soft-deletes the
// definition.
//
// @Summary Partially update a category custom attribute definition
// @Tags category-custom-attributes
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param body body updateCategoryAttributeRequest true "Fields to update"
// @Success 200 {object} map[string]model.CategoryCustomAttribute
// @Router /admin/category/{id}/custom-attributes [patch]
func UpdateCategoryAttribute(svc service.CategoryAttributeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateCategoryAttributeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.ID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "id is required")
		}

		deletedAt, err := parseDeletedAt(req.DeletedAt)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DELETED_AT", "deleted_at must be an RFC 3339 timestamp")
		}

		attr, err := svc.Update(c.UserContext(), service.UpdateCategoryAttributeInput{
			ID:        req.ID,
			Label:     req.Label,
			Type:      req.Type,
			DeletedAt: deletedAt,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"categoryCustomAttribute": attr})
	}
}

// parseDeletedAt converts an optional RFC 3339 request field into the
// timestamp services expect. A nil input stays nil.
func parseDeletedAt(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
