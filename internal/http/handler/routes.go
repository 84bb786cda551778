package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"attrapi/internal/service"
)

// Services bundles the injected use-case services consumed by the routes.
type Services struct {
	CategoryAttributes service.CategoryAttributeService
	ProductAttributes  service.ProductAttributeService
	Sync               service.SyncService
	Uploads            service.UploadService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers stay
// thin; validation beyond request shape lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	admin := app.Group("/admin")

	category := admin.Group("/category/:id/custom-attributes")
	category.Post("/", CreateCategoryAttribute(svcs.CategoryAttributes))
	category.Get("/", ListCategoryAttributes(svcs.CategoryAttributes))
	category.Patch("/", UpdateCategoryAttribute(svcs.CategoryAttributes))

	// The sync route must be registered before the parameterized product
	// group so "/admin/product/sync" is not captured as a product id.
	admin.Get("/product/sync", SyncAttributes(svcs.Sync))

	product := admin.Group("/product/:id/custom-attributes")
	product.Post("/", CreateProductAttribute(svcs.ProductAttributes))
	product.Get("/", ListProductAttributes(svcs.ProductAttributes))
	product.Patch("/", UpdateProductAttributes(svcs.ProductAttributes))
	product.Delete("/", DeleteProductAttribute(svcs.ProductAttributes))

	admin.Post("/s3-presigned-url", PresignUpload(svcs.Uploads))
}
