package dto

import "github.com/tu-usuario/poulstock/internal/domain/entity"

// ProductResponse salida de un producto. qty viaja como número o null
// (stock desconocido); null nunca se interpreta como cero.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Qty   entity.Quantity `json:"qty"`
	Unit  string          `json:"unit"`
	Note  string          `json:"note,omitempty"`
	Group string          `json:"group,omitempty"`
}

// CategoryResponse salida de una categoría con sus productos en orden.
type CategoryResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Icon              string            `json:"icon"`
	Color             string            `json:"color,omitempty"`
	LowStockThreshold *int              `json:"low_stock_threshold,omitempty"`
	Products          []ProductResponse `json:"products"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ThresholdRequest entrada para fijar el umbral de stock bajo.
type ThresholdRequest struct {
	LowStockThreshold int `json:"low_stock_threshold"`
}

// CreateProductRequest entrada para crear un producto. qty ausente o null
// crea el producto con stock desconocido.
type CreateProductRequest struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Qty        entity.Quantity `json:"qty"`
	Unit       string          `json:"unit"`
	Note       string          `json:"note"`
	Group      string          `json:"group"`
}

// QtyPatch distingue "campo ausente" (conserva el valor previo) de
// "qty: null" (pasa a desconocido) en las actualizaciones parciales.
type QtyPatch struct {
	Set bool
	Qty entity.Quantity
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el JSON.
func (q *QtyPatch) UnmarshalJSON(data []byte) error {
	q.Set = true
	return q.Qty.UnmarshalJSON(data)
}

// UpdateProductRequest entrada para actualizar un producto. Los campos
// ausentes conservan el valor previo.
type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Qty   QtyPatch `json:"qty"`
	Unit  *string  `json:"unit"`
	Note  *string  `json:"note"`
	Group *string  `json:"group"`
}

// ErrorResponse cuerpo de error de la API: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToCategory convierte la respuesta de red a entidad, aplicando el umbral
// por defecto cuando el backend no envía uno.
func (c CategoryResponse) ToCategory() entity.Category {
	threshold := entity.DefaultThreshold
	if c.LowStockThreshold != nil {
		threshold = *c.LowStockThreshold
	}
	products := make([]entity.Product, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, p.ToProduct())
	}
	return entity.Category{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Threshold: threshold,
		Products:  products,
	}
}

// ToProduct convierte la respuesta de red a entidad.
func (p ProductResponse) ToProduct() entity.Product {
	return entity.Product{
		ID:   p.ID,
		Name: p.Name,
		Qty:  p.Qty,
		Unit: p.Unit,
		Note: p.Note,
		Grp:  p.Group,
	}
}

// FromCategory proyecta una entidad a su forma de red.
func FromCategory(c entity.Category) CategoryResponse {
	threshold := c.Threshold
	products := make([]ProductResponse, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, FromProduct(p))
	}
	return CategoryResponse{
		ID:                c.ID,
		Name:              c.Name,
		Icon:              c.Icon,
		Color:             c.Color,
		LowStockThreshold: &threshold,
		Products:          products,
	}
}

// FromProduct proyecta una entidad a su forma de red.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Qty:   p.Qty,
		Unit:  p.Unit,
		Note:  p.Note,
		Group: p.Grp,
	}
}
