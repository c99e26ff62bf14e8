// Package httpgateway implementa el puerto Gateway contra la API HTTP del
// almacén de inventario (JSON, petición/respuesta, sin streaming).
package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/poulstock/internal/application/dto"
	"github.com/tu-usuario/poulstock/internal/application/ports"
	"github.com/tu-usuario/poulstock/internal/domain"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
	"github.com/tu-usuario/poulstock/pkg/logger"
)

// defaultTimeout acota cada petición; el almacén responde en milisegundos
// en condiciones normales.
const defaultTimeout = 15 * time.Second

// Client habla con la API del almacén remoto. Usa net/http de la stdlib.
// Implementa ports.Gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

var _ ports.Gateway = (*Client)(nil)

// NewClient construye el cliente. baseURL sin barra final (ej:
// "http://localhost:8080"); timeout cero aplica defaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do emite una petición JSON y decodifica la respuesta en out (si no es nil).
// Fallos de red, de estado o de decodificación vuelven como
// *domain.TransportError; los rechazos 4xx con cuerpo {"error"} como
// *domain.ValidationError.
func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("petición al almacén fallida")
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		var apiErr dto.ErrorResponse
		if resp.StatusCode < 500 && json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			c.log.Debug().Str("op", op).Str("motivo", apiErr.Error).Msg("rechazo del almacén")
			return &domain.ValidationError{Message: apiErr.Error}
		}
		return &domain.TransportError{Op: op, Err: fmt.Errorf("estado HTTP %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.TransportError{Op: op, Err: fmt.Errorf("respuesta malformada: %w", err)}
		}
	}
	return nil
}

// FetchSnapshot lee el árbol completo, en el orden entregado por el almacén.
func (c *Client) FetchSnapshot(ctx context.Context) (entity.Snapshot, error) {
	var cats []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/data", nil, &cats, "fetch snapshot"); err != nil {
		return nil, err
	}
	snap := make(entity.Snapshot, 0, len(cats))
	for _, cr := range cats {
		snap = append(snap, cr.ToCategory())
	}
	c.log.Debug().Int("categorias", len(snap)).Int("productos", snap.ProductCount()).Msg("snapshot recibido")
	return snap, nil
}

// CreateCategory crea una categoría. Nombre duplicado vuelve como
// *domain.ValidationError.
func (c *Client) CreateCategory(ctx context.Context, name, icon string) (*entity.Category, error) {
	var out dto.CategoryResponse
	in := dto.CreateCategoryRequest{Name: name, Icon: icon}
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, &out, "create category"); err != nil {
		return nil, err
	}
	cat := out.ToCategory()
	return &cat, nil
}

// UpdateThreshold fija el umbral de stock bajo de una categoría.
func (c *Client) UpdateThreshold(ctx context.Context, categoryID string, threshold int) error {
	in := dto.ThresholdRequest{LowStockThreshold: threshold}
	path := "/api/categories/" + categoryID + "/threshold"
	return c.do(ctx, http.MethodPut, path, in, nil, "update threshold")
}

// CreateProduct crea un producto dentro de una categoría.
func (c *Client) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*entity.Product, error) {
	req := dto.CreateProductRequest{
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Qty:        in.Qty,
		Unit:       in.Unit,
		Note:       in.Note,
		Group:      in.Grp,
	}
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &out, "create product"); err != nil {
		return nil, err
	}
	p := out.ToProduct()
	return &p, nil
}

// UpdateProduct reemplaza los campos editables de un producto.
func (c *Client) UpdateProduct(ctx context.Context, productID string, in ports.UpdateProductInput) (*entity.Product, error) {
	req := struct {
		Name string          `json:"name"`
		Qty  entity.Quantity `json:"qty"`
		Unit string          `json:"unit"`
		Note string          `json:"note"`
	}{Name: in.Name, Qty: in.Qty, Unit: in.Unit, Note: in.Note}

	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, "/api/products/"+productID, req, &out, "update product"); err != nil {
		return nil, err
	}
	p := out.ToProduct()
	return &p, nil
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+productID, nil, nil, "delete product")
}

// DeleteCategory elimina una categoría; el almacén borra sus productos en cascada.
func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+categoryID, nil, nil, "delete category")
}
