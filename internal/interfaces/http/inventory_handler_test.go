package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/poulstock/internal/application/dto"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
	"github.com/tu-usuario/poulstock/internal/infrastructure/memstore"
	apphttp "github.com/tu-usuario/poulstock/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber con un almacén en memoria
// sembrado con una categoría Dairy de dos productos.
func buildTestApp() (*fiber.App, *memstore.Store) {
	store := memstore.New()
	store.Seed(entity.Snapshot{
		{ID: "dairy", Name: "Dairy", Icon: "fa-solid fa-box", Threshold: 5, Products: []entity.Product{
			{ID: "p1", Name: "Lait", Qty: entity.KnownQty(2), Unit: "L"},
			{ID: "p2", Name: "Beurre", Qty: entity.KnownQty(10)},
		}},
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Store: store})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/data
// ──────────────────────────────────────────────────────────────────────────────

func TestGetData_ArbolCompleto(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/data", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []dto.CategoryResponse
	decodeBody(t, resp, &cats)
	require.Len(t, cats, 1)
	assert.Equal(t, "dairy", cats[0].ID)
	require.NotNil(t, cats[0].LowStockThreshold)
	assert.Equal(t, 5, *cats[0].LowStockThreshold)
	require.Len(t, cats[0].Products, 2)
	assert.Equal(t, entity.KnownQty(2), cats[0].Products[0].Qty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory_Creada(t *testing.T) {
	app, store := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"Litière"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cat dto.CategoryResponse
	decodeBody(t, resp, &cat)
	assert.Equal(t, "litière", cat.ID)
	assert.Equal(t, "fa-solid fa-box", cat.Icon, "icono por defecto cuando no llega")
	assert.Empty(t, cat.Products)

	assert.Len(t, store.All(), 2)
}

// TestCreateCategory_Duplicada: 409 con {"error"} y el almacén intacto.
func TestCreateCategory_Duplicada(t *testing.T) {
	app, store := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"dairy","icon":"fa-solid fa-egg"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Error)
	assert.Len(t, store.All(), 1, "el recuento de categorías no cambia")
}

func TestCreateCategory_SinNombre(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"icon":"fa-solid fa-egg"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateThreshold_Aplicado(t *testing.T) {
	app, store := buildTestApp()

	resp := doJSON(t, app, http.MethodPut, "/api/categories/dairy/threshold", `{"low_stock_threshold":2}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 2, store.All()[0].Threshold)

	resp = doJSON(t, app, http.MethodPut, "/api/categories/nope/threshold", `{"low_stock_threshold":2}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/categories/dairy/threshold", `{"low_stock_threshold":-4}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCategory_Cascada(t *testing.T) {
	app, store := buildTestApp()

	resp := doJSON(t, app, http.MethodDelete, "/api/categories/dairy", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, store.All())
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_QtyNullEsDesconocida(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products",
		`{"category_id":"dairy","name":"Yaourt","qty":null,"unit":"pots"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var p dto.ProductResponse
	decodeBody(t, resp, &p)
	assert.True(t, p.Qty.IsUnknown())
	assert.Len(t, p.ID, 8)
}

func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", `{"category_id":"nope","name":"Yaourt"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestUpdateProduct_Parcial: los campos ausentes conservan su valor previo.
func TestUpdateProduct_Parcial(t *testing.T) {
	app, store := buildTestApp()

	resp := doJSON(t, app, http.MethodPut, "/api/products/p1", `{"qty":7}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p dto.ProductResponse
	decodeBody(t, resp, &p)
	assert.Equal(t, "Lait", p.Name, "el nombre no viajó y se conserva")
	assert.Equal(t, entity.KnownQty(7), p.Qty)
	assert.Equal(t, "L", p.Unit)

	got, _ := store.All().FindProduct("p1")
	assert.Equal(t, entity.KnownQty(7), got.Qty)
}

func TestDeleteProduct(t *testing.T) {
	app, store := buildTestApp()

	resp := doJSON(t, app, http.MethodDelete, "/api/products/p2", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	p, _ := store.All().FindProduct("p2")
	assert.Nil(t, p)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/p2", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
