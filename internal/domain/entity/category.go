package entity

// DefaultThreshold es el umbral de stock bajo cuando la categoría no define uno.
const DefaultThreshold = 5

// DefaultColor es el color que aplica el consumidor cuando la categoría no trae uno.
const DefaultColor = "#C0574F"

// Category representa una categoría del inventario con sus productos,
// en el orden entregado por el backend.
type Category struct {
	ID        string
	Name      string
	Icon      string // referencia simbólica (ej: "fa-solid fa-box")
	Color     string // hex opcional; vacío = el consumidor aplica DefaultColor
	Threshold int    // umbral de stock bajo, >= 0
	Products  []Product
}

// ColorOrDefault devuelve el color de la categoría, o DefaultColor si no trae uno.
func (c Category) ColorOrDefault() string {
	if c.Color == "" {
		return DefaultColor
	}
	return c.Color
}
