package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tu-usuario/poulstock/internal/infrastructure/memstore"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store         *memstore.Store
	ExposeMetrics bool
}

// Router registra las rutas de la API de inventario.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.ExposeMetrics {
		app.Use(NewMetricsMiddleware())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")
	h := NewInventoryHandler(deps.Store)

	api.Get("/data", h.GetData)

	categories := api.Group("/categories")
	categories.Post("/", h.CreateCategory)
	categories.Put("/:id/threshold", h.UpdateThreshold)
	categories.Delete("/:id", h.DeleteCategory)

	products := api.Group("/products")
	products.Post("/", h.CreateProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)
}
