// Binario de operador sin interfaz: carga el snapshot a través del gateway
// y registra el desglose de alertas de stock bajo. Útil para comprobar el
// estado del inventario desde terminal o cron.
package main

import (
	"context"
	"time"

	"github.com/tu-usuario/poulstock/internal/application/dashboard"
	"github.com/tu-usuario/poulstock/internal/application/view"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
	"github.com/tu-usuario/poulstock/internal/infrastructure/httpgateway"
	"github.com/tu-usuario/poulstock/pkg/config"
	"github.com/tu-usuario/poulstock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	gw := httpgateway.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout(), log)
	uc := dashboard.New(gw)

	uc.OnSnapshotLoaded(func(snap entity.Snapshot) {
		log.Info().
			Int("categorias", len(snap)).
			Int("productos", snap.ProductCount()).
			Msg("snapshot cargado")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := uc.Reload(ctx); err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.Remote.BaseURL).Msg("no se pudo cargar el inventario")
	}

	groups := uc.Alerts()
	if len(groups) == 0 {
		log.Info().Msg("todos los stocks están por encima del umbral")
		return
	}

	log.Warn().Int("total", uc.AlertCount()).Msg("productos en stock bajo")
	for _, g := range groups {
		for _, p := range g.Products {
			log.Warn().
				Str("categoria", g.Category.Name).
				Int("umbral", g.Threshold).
				Str("producto", p.Name).
				Str("qty", p.Qty.String()).
				Msg("stock bajo")
		}
	}

	// Resumen por categoría visible (sin filtros), como las tarjetas del tablero.
	for _, cv := range uc.View(view.Filter{}).Categories {
		log.Info().
			Str("categoria", cv.Category.Name).
			Int("productos", cv.Total).
			Msg("categoría")
	}
}
