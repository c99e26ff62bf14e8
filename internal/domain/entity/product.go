package entity

// Product representa un producto del inventario. Pertenece a exactamente una
// categoría; no guarda referencia inversa, la categoría se resuelve por búsqueda.
type Product struct {
	ID   string
	Name string
	Qty  Quantity
	Unit string // etiqueta opcional (ej: "kg", "sacos")
	Note string // texto libre opcional
	Grp  string // agrupación opcional dentro de la categoría, solo presentación
}
