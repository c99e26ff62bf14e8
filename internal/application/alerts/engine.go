// Package alerts deriva las alertas de stock bajo a partir del snapshot.
// Todo es función pura: se recalcula en cada carga y en cada cambio de umbral.
package alerts

import "github.com/tu-usuario/poulstock/internal/domain/entity"

// Compute devuelve los grupos de alerta en el orden de categorías del
// snapshot. Un producto entra en alerta si su stock es desconocido o <= el
// umbral de su categoría; las categorías sin candidatos se omiten.
func Compute(snap entity.Snapshot) []entity.AlertGroup {
	groups := make([]entity.AlertGroup, 0)
	for _, cat := range snap {
		threshold := cat.Threshold
		var low []entity.Product
		for _, p := range cat.Products {
			if p.Qty.AtOrBelow(threshold) {
				low = append(low, p)
			}
		}
		if len(low) == 0 {
			continue
		}
		groups = append(groups, entity.AlertGroup{
			Category:  cat,
			Threshold: threshold,
			Products:  low,
		})
	}
	return groups
}

// Count devuelve el total de productos en alerta; alimenta la burbuja de la
// campana. Cero significa "sin burbuja", no "burbuja con 0".
func Count(snap entity.Snapshot) int {
	total := 0
	for _, g := range Compute(snap) {
		total += len(g.Products)
	}
	return total
}
