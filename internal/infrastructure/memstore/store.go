// Package memstore es el almacén en memoria del backend de referencia.
// Guarda el árbol categorías → productos con orden estable de inserción;
// la persistencia real queda fuera del sistema (colaborador externo).
package memstore

import (
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
	"github.com/tu-usuario/poulstock/internal/domain"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

// Store guarda el inventario protegido por un mutex. Todas las lecturas
// devuelven copias profundas.
type Store struct {
	mu         sync.Mutex
	categories entity.Snapshot
}

// New construye un almacén vacío.
func New() *Store {
	return &Store{categories: entity.Snapshot{}}
}

// Seed reemplaza el contenido completo (carga inicial del binario).
func (s *Store) Seed(snap entity.Snapshot) {
	s.mu.Lock()
	s.categories = snap.Clone()
	s.mu.Unlock()
}

// All devuelve el árbol completo en orden de inserción.
func (s *Store) All() entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.Clone()
}

// slugify deriva el ID de categoría del nombre: minúsculas, espacios a
// guiones, solo letras, dígitos y guiones.
func slugify(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	var b strings.Builder
	for _, r := range slug {
		if r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// newProductID genera un ID corto de producto (uuid4 hex truncado a 8).
func newProductID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// CreateCategory añade una categoría al final. Nombres duplicados
// (insensible a mayúsculas, tras recortar) se rechazan con ErrDuplicateName.
func (s *Store) CreateCategory(name, icon, color string) (entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Category{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return entity.Category{}, domain.ErrDuplicateName
		}
	}
	cat := entity.Category{
		ID:        slugify(name),
		Name:      name,
		Icon:      icon,
		Color:     color,
		Threshold: entity.DefaultThreshold,
		Products:  []entity.Product{},
	}
	s.categories = append(s.categories, cat)
	return cat, nil
}

// DeleteCategory elimina una categoría y, en cascada, sus productos.
func (s *Store) DeleteCategory(categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == categoryID {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetThreshold fija el umbral de stock bajo de una categoría.
func (s *Store) SetThreshold(categoryID string, threshold int) error {
	if threshold < 0 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.categories.FindCategory(categoryID)
	if cat == nil {
		return domain.ErrNotFound
	}
	cat.Threshold = threshold
	return nil
}

// CreateProduct añade un producto al final de su categoría.
func (s *Store) CreateProduct(categoryID string, p entity.Product) (entity.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || categoryID == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.categories.FindCategory(categoryID)
	if cat == nil {
		return entity.Product{}, domain.ErrNotFound
	}
	p.ID = newProductID()
	cat.Products = append(cat.Products, p)
	return p, nil
}

// UpdateProduct aplica una actualización parcial: los punteros nil conservan
// el valor previo; qtySet distingue "sin tocar" de "pasar a desconocido".
func (s *Store) UpdateProduct(productID string, name, unit, note, group *string, qtySet bool, qty entity.Quantity) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := s.categories.FindProduct(productID)
	if p == nil {
		return entity.Product{}, domain.ErrNotFound
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return entity.Product{}, domain.ErrInvalidInput
		}
		p.Name = trimmed
	}
	if qtySet {
		p.Qty = qty
	}
	if unit != nil {
		p.Unit = strings.TrimSpace(*unit)
	}
	if note != nil {
		p.Note = strings.TrimSpace(*note)
	}
	if group != nil {
		p.Grp = strings.TrimSpace(*group)
	}
	return *p, nil
}

// DeleteProduct elimina un producto.
func (s *Store) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		products := s.categories[i].Products
		for j := range products {
			if products[j].ID == productID {
				s.categories[i].Products = append(products[:j], products[j+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}
