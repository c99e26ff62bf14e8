package http_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/poulstock/internal/application/dashboard"
	"github.com/tu-usuario/poulstock/internal/application/view"
	"github.com/tu-usuario/poulstock/internal/domain"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
	"github.com/tu-usuario/poulstock/internal/infrastructure/httpgateway"
	"github.com/tu-usuario/poulstock/internal/infrastructure/memstore"
	apphttp "github.com/tu-usuario/poulstock/internal/interfaces/http"
	"github.com/tu-usuario/poulstock/pkg/logger"
)

// startBackend levanta el backend de referencia en un puerto efímero y
// devuelve su URL base.
func startBackend(t *testing.T, store *memstore.Store) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	apphttp.Router(app, apphttp.RouterDeps{Store: store})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

// TestRoundTrip_EditarYConfirmarCantidad recorre el ciclo completo del
// tablero contra el backend real: cargar, editar, confirmar, recargar.
func TestRoundTrip_EditarYConfirmarCantidad(t *testing.T) {
	store := memstore.New()
	store.Seed(entity.Snapshot{
		{ID: "dairy", Name: "Dairy", Icon: "fa-solid fa-box", Threshold: 5, Products: []entity.Product{
			{ID: "p1", Name: "Lait", Qty: entity.KnownQty(2), Unit: "L"},
			{ID: "p2", Name: "Beurre", Qty: entity.KnownQty(10)},
		}},
	})
	baseURL := startBackend(t, store)

	gw := httpgateway.NewClient(baseURL, 5*time.Second, logger.Nop())
	uc := dashboard.New(gw)
	ctx := context.Background()

	_, err := uc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, uc.AlertCount(), "solo Lait (2 <= 5) está en alerta")

	// El operador sube Lait a 6 y confirma.
	for i := 0; i < 4; i++ {
		_, err = uc.Bump("p1", +1)
		require.NoError(t, err)
	}
	require.True(t, uc.Dirty("p1"))
	require.NoError(t, uc.CommitQty(ctx, "p1"))

	p, _ := uc.Snapshot().FindProduct("p1")
	require.NotNil(t, p)
	assert.Equal(t, entity.KnownQty(6), p.Qty, "el snapshot fresco trae el valor confirmado")
	assert.False(t, uc.Dirty("p1"))
	assert.Zero(t, uc.AlertCount(), "con 6 > 5 ya no hay alertas")
}

func TestRoundTrip_CategoriaDuplicada(t *testing.T) {
	store := memstore.New()
	store.Seed(memstore.DefaultSeed())
	baseURL := startBackend(t, store)

	uc := dashboard.New(httpgateway.NewClient(baseURL, 5*time.Second, logger.Nop()))
	ctx := context.Background()

	_, err := uc.Reload(ctx)
	require.NoError(t, err)
	before := len(uc.Snapshot())

	_, err = uc.CreateCategory(ctx, "Alimentation", "")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "el duplicado es un rechazo de validación")
	assert.Len(t, uc.Snapshot(), before, "el snapshot no cambia")
}

// TestRoundTrip_UmbralesEnLote guarda dos umbrales a la vez y comprueba que
// la única recarga posterior ya refleja ambos.
func TestRoundTrip_UmbralesEnLote(t *testing.T) {
	store := memstore.New()
	store.Seed(entity.Snapshot{
		{ID: "c1", Name: "Uno", Threshold: 5, Products: []entity.Product{{ID: "p1", Name: "A", Qty: entity.KnownQty(4)}}},
		{ID: "c2", Name: "Dos", Threshold: 5, Products: []entity.Product{{ID: "p2", Name: "B", Qty: entity.KnownQty(8)}}},
	})
	baseURL := startBackend(t, store)

	uc := dashboard.New(httpgateway.NewClient(baseURL, 5*time.Second, logger.Nop()))
	ctx := context.Background()
	_, err := uc.Reload(ctx)
	require.NoError(t, err)

	require.NoError(t, uc.SaveThresholds(ctx, map[string]int{"c1": 3, "c2": 7}))

	snap := uc.Snapshot()
	assert.Equal(t, 3, snap.FindCategory("c1").Threshold)
	assert.Equal(t, 7, snap.FindCategory("c2").Threshold)
	assert.Zero(t, uc.AlertCount(), "con los nuevos umbrales ningún producto queda en alerta")
}

func TestRoundTrip_BusquedaSobreSnapshotVivo(t *testing.T) {
	store := memstore.New()
	store.Seed(memstore.DefaultSeed())
	baseURL := startBackend(t, store)

	uc := dashboard.New(httpgateway.NewClient(baseURL, 5*time.Second, logger.Nop()))
	_, err := uc.Reload(context.Background())
	require.NoError(t, err)

	got := uc.View(view.Filter{Query: "paille"})
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "litiere", got.Categories[0].Category.ID)
}
