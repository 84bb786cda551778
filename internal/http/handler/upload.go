package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"attrapi/internal/service"
)

type presignUploadRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PresignUpload handles POST /admin/s3-presigned-url. The client POSTs the
// returned fields plus the file to url, then saves fileUrl as the attribute
// value.
//
// @Summary Issue a presigned POST policy for a file-typed attribute upload
// @Tags uploads
// @Accept json
// @Produce json
// @Param body body presignUploadRequest true "File name and content type"
// @Success 200 {object} service.PresignResult
// @Router /admin/s3-presigned-url [post]
func PresignUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req presignUploadRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.PresignUpload(c.UserContext(), req.Name, req.Type)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "file name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "failed to presign upload")
		}
		return c.JSON(res)
	}
}
