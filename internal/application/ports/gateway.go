package ports

import (
	"context"

	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

// CreateProductInput entrada para crear un producto.
type CreateProductInput struct {
	CategoryID string
	Name       string
	Qty        entity.Quantity
	Unit       string
	Note       string
	Grp        string
}

// UpdateProductInput entrada para actualizar un producto.
type UpdateProductInput struct {
	Name string
	Qty  entity.Quantity
	Unit string
	Note string
}

// Gateway define el puerto de salida hacia el almacén remoto de inventario.
// Cualquier adaptador (HTTP, mock de tests) debe implementar esta interfaz.
// Todas las operaciones son petición/respuesta; las mutaciones que el backend
// rechaza devuelven *domain.ValidationError, los fallos de red o de
// decodificación devuelven *domain.TransportError.
type Gateway interface {
	// FetchSnapshot lee el árbol completo de inventario, en el orden del backend.
	FetchSnapshot(ctx context.Context) (entity.Snapshot, error)

	// CreateCategory crea una categoría. Los nombres duplicados se rechazan
	// con *domain.ValidationError.
	CreateCategory(ctx context.Context, name, icon string) (*entity.Category, error)

	// UpdateThreshold fija el umbral de stock bajo de una categoría (>= 0).
	UpdateThreshold(ctx context.Context, categoryID string, threshold int) error

	// CreateProduct crea un producto dentro de una categoría.
	CreateProduct(ctx context.Context, in CreateProductInput) (*entity.Product, error)

	// UpdateProduct reemplaza los campos editables de un producto.
	UpdateProduct(ctx context.Context, productID string, in UpdateProductInput) (*entity.Product, error)

	// DeleteProduct elimina un producto.
	DeleteProduct(ctx context.Context, productID string) error

	// DeleteCategory elimina una categoría y, en cascada, sus productos
	// (la cascada es contrato del almacén remoto).
	DeleteCategory(ctx context.Context, categoryID string) error
}
