package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poulstock/internal/application/dto"
	"github.com/tu-usuario/poulstock/internal/domain"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
	"github.com/tu-usuario/poulstock/internal/infrastructure/memstore"
)

// InventoryHandler maneja las peticiones HTTP del árbol de inventario.
// El contrato de error es {"error": "..."}: los rechazos de validación son
// recuperables en el cliente y se muestran junto al control ofensor.
type InventoryHandler struct {
	store *memstore.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *memstore.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "recurso no encontrado")
	case errors.Is(err, domain.ErrDuplicateName):
		return jsonError(c, fiber.StatusConflict, "ya existe una categoría con ese nombre")
	case errors.Is(err, domain.ErrInvalidInput):
		return jsonError(c, fiber.StatusBadRequest, "entrada inválida")
	default:
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// GetData devuelve el árbol completo categorías → productos, en orden.
// GET /api/data
func (h *InventoryHandler) GetData(c *fiber.Ctx) error {
	snap := h.store.All()
	out := make([]dto.CategoryResponse, 0, len(snap))
	for _, cat := range snap {
		out = append(out, dto.FromCategory(cat))
	}
	return c.JSON(out)
}

// CreateCategory crea una categoría; nombre duplicado → 409 {"error"}.
// POST /api/categories
func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "el nombre es requerido")
	}
	if in.Icon == "" {
		in.Icon = "fa-solid fa-box"
	}
	cat, err := h.store.CreateCategory(in.Name, in.Icon, "")
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCategory(cat))
}

// UpdateThreshold fija el umbral de stock bajo de una categoría.
// PUT /api/categories/:id/threshold
func (h *InventoryHandler) UpdateThreshold(c *fiber.Ctx) error {
	var in dto.ThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.store.SetThreshold(c.Params("id"), in.LowStockThreshold); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCategory elimina la categoría y sus productos en cascada.
// DELETE /api/categories/:id
func (h *InventoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.store.DeleteCategory(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateProduct crea un producto en una categoría. qty ausente o null deja
// el stock desconocido, nunca en cero.
// POST /api/products
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.CategoryID == "" {
		return jsonError(c, fiber.StatusBadRequest, "el nombre y la categoría son requeridos")
	}
	p, err := h.store.CreateProduct(in.CategoryID, entity.Product{
		Name: in.Name,
		Qty:  in.Qty,
		Unit: in.Unit,
		Note: in.Note,
		Grp:  in.Group,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(p))
}

// UpdateProduct actualización parcial: campos ausentes conservan su valor.
// PUT /api/products/:id
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	p, err := h.store.UpdateProduct(c.Params("id"), in.Name, in.Unit, in.Note, in.Group, in.Qty.Set, in.Qty.Qty)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// DeleteProduct elimina un producto.
// DELETE /api/products/:id
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.store.DeleteProduct(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
