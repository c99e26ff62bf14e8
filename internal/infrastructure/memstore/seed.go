package memstore

import "github.com/tu-usuario/poulstock/internal/domain/entity"

// DefaultSeed devuelve un inventario inicial de ejemplo para el backend de
// referencia (el almacén real es un colaborador externo).
func DefaultSeed() entity.Snapshot {
	return entity.Snapshot{
		{
			ID:        "alimentation",
			Name:      "Alimentation",
			Icon:      "fa-solid fa-wheat-awn",
			Color:     "#D9A441",
			Threshold: 3,
			Products: []entity.Product{
				{ID: "a1f04c2e", Name: "Blé concassé", Qty: entity.KnownQty(6), Unit: "sacs", Grp: "Céréales"},
				{ID: "b3d91a70", Name: "Maïs", Qty: entity.KnownQty(2), Unit: "sacs", Note: "fournisseur habituel en rupture", Grp: "Céréales"},
				{ID: "c85e22f1", Name: "Coquilles d'huître", Qty: entity.UnknownQty(), Unit: "kg"},
			},
		},
		{
			ID:        "litiere",
			Name:      "Litière",
			Icon:      "fa-solid fa-broom",
			Color:     "#8A9B6E",
			Threshold: 5,
			Products: []entity.Product{
				{ID: "d4470b9a", Name: "Copeaux de bois", Qty: entity.KnownQty(12), Unit: "sacs"},
				{ID: "e91c3f55", Name: "Paille", Qty: entity.KnownQty(4), Unit: "bottes"},
			},
		},
		{
			ID:        "soins",
			Name:      "Soins",
			Icon:      "fa-solid fa-kit-medical",
			Color:     "#C0574F",
			Threshold: 2,
			Products: []entity.Product{
				{ID: "f6a8d013", Name: "Vermifuge", Qty: entity.KnownQty(1), Unit: "flacons", Note: "vérifier la date de péremption"},
				{ID: "0b52c7e9", Name: "Terre de diatomée", Qty: entity.KnownQty(3), Unit: "kg"},
			},
		},
	}
}
