// Package view proyecta subconjuntos visibles del snapshot para búsqueda y
// filtro por categoría. Solo lectura: nunca muta el snapshot.
package view

import (
	"strings"

	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

const (
	// TargetAll muestra todas las categorías.
	TargetAll = "all"
	// GroupMisc es la etiqueta del cubo final para productos sin agrupación.
	// La presentación puede localizarla (el tablero la muestra como "Divers").
	GroupMisc = "misc"
)

// Filter combina los dos filtros independientes del tablero.
type Filter struct {
	Query  string // subcadena, insensible a mayúsculas, sobre nombre y nota
	Target string // TargetAll (o vacío) para todas, o un ID de categoría
}

// GroupView es un bloque de productos bajo una etiqueta de agrupación.
type GroupView struct {
	Label    string // vacío si la categoría no usa agrupaciones
	Products []entity.Product
}

// CategoryView es una categoría visible con sus productos ya filtrados y
// agrupados. Total conserva el recuento completo para las tarjetas de
// estadísticas, independientemente del filtro de texto.
type CategoryView struct {
	Category entity.Category
	Total    int
	Groups   []GroupView
}

// Projection es el resultado de aplicar un Filter al snapshot.
type Projection struct {
	Categories []CategoryView
	// ScrollTo lleva el ID de la categoría a la que la presentación debe
	// desplazarse, o vacío si no aplica.
	ScrollTo string
}

// Matches indica si el producto pasa el filtro de texto: query vacía, o
// subcadena (insensible a mayúsculas) del nombre o de la nota.
func Matches(p entity.Product, query string) bool {
	q := normalize(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Note), q)
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Project aplica ambos filtros al snapshot. Una categoría se muestra si pasa
// el filtro de categoría Y tiene al menos un producto que pasa el de texto
// (o la query está vacía). El orden de categorías y productos es el del
// snapshot; la agrupación solo reordena la presentación dentro de la categoría.
func Project(snap entity.Snapshot, f Filter) Projection {
	q := normalize(f.Query)
	target := f.Target
	if target == "" {
		target = TargetAll
	}

	out := Projection{Categories: make([]CategoryView, 0, len(snap))}
	if target != TargetAll {
		out.ScrollTo = target
	}

	for _, cat := range snap {
		if target != TargetAll && cat.ID != target {
			continue
		}
		visible := make([]entity.Product, 0, len(cat.Products))
		for _, p := range cat.Products {
			if Matches(p, q) {
				visible = append(visible, p)
			}
		}
		if len(visible) == 0 && q != "" {
			continue
		}
		out.Categories = append(out.Categories, CategoryView{
			Category: cat,
			Total:    len(cat.Products),
			Groups:   cluster(visible),
		})
	}
	return out
}

// cluster agrupa los productos visibles por su etiqueta Grp, en orden de
// primera aparición, con los no agrupados en un cubo final GroupMisc. Si
// ningún producto visible trae etiqueta, devuelve un único bloque sin etiqueta.
func cluster(products []entity.Product) []GroupView {
	hasGroups := false
	for _, p := range products {
		if p.Grp != "" {
			hasGroups = true
			break
		}
	}
	if !hasGroups {
		return []GroupView{{Products: products}}
	}

	order := make([]string, 0)
	byLabel := make(map[string][]entity.Product)
	var misc []entity.Product
	for _, p := range products {
		if p.Grp == "" {
			misc = append(misc, p)
			continue
		}
		if _, ok := byLabel[p.Grp]; !ok {
			order = append(order, p.Grp)
		}
		byLabel[p.Grp] = append(byLabel[p.Grp], p)
	}

	groups := make([]GroupView, 0, len(order)+1)
	for _, label := range order {
		groups = append(groups, GroupView{Label: label, Products: byLabel[label]})
	}
	if len(misc) > 0 {
		groups = append(groups, GroupView{Label: GroupMisc, Products: misc})
	}
	return groups
}
