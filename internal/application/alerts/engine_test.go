package alerts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/poulstock/internal/application/alerts"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

func snapDairy() entity.Snapshot {
	return entity.Snapshot{
		{ID: "c1", Name: "Dairy", Threshold: 5, Products: []entity.Product{
			{ID: "p1", Name: "Lait", Qty: entity.KnownQty(2)},
			{ID: "p2", Name: "Beurre", Qty: entity.KnownQty(10)},
		}},
	}
}

// TestCompute_EscenarioDairy es el escenario de referencia: umbral 5,
// p1 con 2 unidades entra en alerta, p2 con 10 no.
func TestCompute_EscenarioDairy(t *testing.T) {
	groups := alerts.Compute(snapDairy())

	require.Len(t, groups, 1)
	assert.Equal(t, "c1", groups[0].Category.ID)
	assert.Equal(t, 5, groups[0].Threshold)
	require.Len(t, groups[0].Products, 1)
	assert.Equal(t, "p1", groups[0].Products[0].ID)

	assert.Equal(t, 1, alerts.Count(snapDairy()))
}

func TestCompute_DesconocidaCuentaComoBaja(t *testing.T) {
	snap := entity.Snapshot{
		{ID: "c1", Name: "Soins", Threshold: 0, Products: []entity.Product{
			{ID: "p1", Name: "Vermifuge", Qty: entity.UnknownQty()},
			{ID: "p2", Name: "Gants", Qty: entity.KnownQty(1)},
		}},
	}
	groups := alerts.Compute(snap)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Products, 1, "con umbral 0 solo el stock desconocido entra")
	assert.Equal(t, "p1", groups[0].Products[0].ID)
}

func TestCompute_CategoriasSinCandidatosSeOmiten(t *testing.T) {
	snap := entity.Snapshot{
		{ID: "c1", Name: "Pleno", Threshold: 1, Products: []entity.Product{
			{ID: "p1", Qty: entity.KnownQty(50)},
		}},
	}
	assert.Empty(t, alerts.Compute(snap))
	assert.Zero(t, alerts.Count(snap))
}

// TestCompute_OrdenDelSnapshot verifica que el resultado sigue el orden de
// categorías del snapshot, no la severidad.
func TestCompute_OrdenDelSnapshot(t *testing.T) {
	snap := entity.Snapshot{
		{ID: "c1", Threshold: 5, Products: []entity.Product{{ID: "p1", Qty: entity.KnownQty(5)}}},
		{ID: "c2", Threshold: 5, Products: []entity.Product{{ID: "p2", Qty: entity.KnownQty(0)}}},
		{ID: "c3", Threshold: 5, Products: []entity.Product{{ID: "p3", Qty: entity.KnownQty(9)}}},
	}
	groups := alerts.Compute(snap)

	require.Len(t, groups, 2)
	assert.Equal(t, "c1", groups[0].Category.ID)
	assert.Equal(t, "c2", groups[1].Category.ID)
}

// TestCount_EsSumaDeGrupos comprueba la propiedad Count == Σ|grupo| y que
// Count es 0 exactamente cuando Compute no devuelve grupos.
func TestCount_EsSumaDeGrupos(t *testing.T) {
	snap := entity.Snapshot{
		{ID: "c1", Threshold: 3, Products: []entity.Product{
			{ID: "p1", Qty: entity.KnownQty(1)},
			{ID: "p2", Qty: entity.UnknownQty()},
			{ID: "p3", Qty: entity.KnownQty(8)},
		}},
		{ID: "c2", Threshold: 10, Products: []entity.Product{
			{ID: "p4", Qty: entity.KnownQty(10)},
		}},
	}
	groups := alerts.Compute(snap)
	sum := 0
	for _, g := range groups {
		sum += len(g.Products)
	}

	assert.Equal(t, sum, alerts.Count(snap))
	assert.Equal(t, 3, sum)
	assert.Equal(t, len(groups) == 0, alerts.Count(snap) == 0)
}

func TestCompute_SnapshotVacio(t *testing.T) {
	assert.Empty(t, alerts.Compute(entity.Snapshot{}))
	assert.Zero(t, alerts.Count(nil))
}
