package entity

// Snapshot es el árbol completo del inventario tal como lo entregó el backend.
// Se reemplaza entero en cada recarga; nunca se muta de forma incremental.
type Snapshot []Category

// FindCategory busca una categoría por ID. Devuelve nil si no existe.
func (s Snapshot) FindCategory(id string) *Category {
	for i := range s {
		if s[i].ID == id {
			return &s[i]
		}
	}
	return nil
}

// FindProduct busca un producto por ID en todas las categorías.
// Devuelve el producto y su categoría, o nil si no existe.
func (s Snapshot) FindProduct(id string) (*Product, *Category) {
	for i := range s {
		for j := range s[i].Products {
			if s[i].Products[j].ID == id {
				return &s[i].Products[j], &s[i]
			}
		}
	}
	return nil, nil
}

// ProductCount devuelve el total de productos del snapshot.
func (s Snapshot) ProductCount() int {
	total := 0
	for i := range s {
		total += len(s[i].Products)
	}
	return total
}

// Clone devuelve una copia profunda del snapshot. Las lecturas fuera del
// store trabajan sobre copias para que ningún consumidor retenga referencias
// mutables a un snapshot superado.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for i, c := range s {
		cc := c
		cc.Products = make([]Product, len(c.Products))
		copy(cc.Products, c.Products)
		out[i] = cc
	}
	return out
}

// AlertGroup es el resultado derivado de alertas para una categoría:
// el umbral usado y los productos en stock bajo o desconocido, en orden.
type AlertGroup struct {
	Category  Category
	Threshold int
	Products  []Product
}
