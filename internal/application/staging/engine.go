// Package staging lleva, por producto, la cantidad editada pero aún no
// confirmada contra el backend: el operador pulsa +/- en la tarjeta y solo
// al validar se emite la escritura.
package staging

import (
	"context"
	"sync"

	"github.com/tu-usuario/poulstock/internal/application/ports"
	"github.com/tu-usuario/poulstock/internal/application/snapshot"
	"github.com/tu-usuario/poulstock/internal/domain"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

// Engine mantiene las cantidades en edición, clave = ID de producto.
// Cualquier recarga del snapshot (por la causa que sea) descarta todas las
// ediciones en curso; no hay garantía de persistencia entre ediciones.
type Engine struct {
	gw    ports.Gateway
	store *snapshot.Store

	mu     sync.Mutex
	staged map[string]int
}

// NewEngine construye el motor y se suscribe al store: cada carga exitosa
// reinicia todas las ediciones, volviendo a los valores recién confirmados.
func NewEngine(gw ports.Gateway, store *snapshot.Store) *Engine {
	e := &Engine{
		gw:     gw,
		store:  store,
		staged: make(map[string]int),
	}
	store.OnLoaded(func(entity.Snapshot) { e.ResetAll() })
	return e
}

// baseline devuelve la base de edición del producto: su cantidad confirmada,
// o 0 si el stock es desconocido (el operador parte de 0 en ese caso).
func (e *Engine) baseline(productID string) (int, error) {
	p, _ := e.store.Current().FindProduct(productID)
	if p == nil {
		return 0, domain.ErrNotFound
	}
	return p.Qty.OrZero(), nil
}

// Bump ajusta la cantidad en edición en delta (+1/-1 desde la tarjeta) y
// devuelve el nuevo valor mostrado. Sin tope por arriba; nunca baja de 0.
func (e *Engine) Bump(productID string, delta int) (int, error) {
	base, err := e.baseline(productID)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	cur, ok := e.staged[productID]
	if !ok {
		cur = base
	}
	cur += delta
	if cur < 0 {
		cur = 0
	}
	e.staged[productID] = cur
	return cur, nil
}

// Staged devuelve la cantidad en edición y true, o false si el producto
// no tiene edición en curso.
func (e *Engine) Staged(productID string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.staged[productID]
	return v, ok
}

// Dirty indica si el producto tiene una edición que difiere del valor
// confirmado; controla si la tarjeta muestra el botón de validar.
func (e *Engine) Dirty(productID string) bool {
	base, err := e.baseline(productID)
	if err != nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.staged[productID]
	return ok && v != base
}

// Commit escribe la cantidad en edición a través del gateway y dispara la
// recarga del snapshot (que a su vez reinicia todas las ediciones). Si el
// producto no está sucio es un no-op. En fallo de transporte la edición se
// conserva: la UI no debe avanzar a estado de éxito.
func (e *Engine) Commit(ctx context.Context, productID string) error {
	if !e.Dirty(productID) {
		return nil
	}
	p, _ := e.store.Current().FindProduct(productID)
	if p == nil {
		return domain.ErrNotFound
	}

	e.mu.Lock()
	qty := e.staged[productID]
	e.mu.Unlock()

	_, err := e.gw.UpdateProduct(ctx, productID, ports.UpdateProductInput{
		Name: p.Name,
		Qty:  entity.KnownQty(qty),
		Unit: p.Unit,
		Note: p.Note,
	})
	if err != nil {
		return err
	}
	_, err = e.store.Load(ctx)
	return err
}

// Discard abandona la edición de un producto, volviendo al valor confirmado.
func (e *Engine) Discard(productID string) {
	e.mu.Lock()
	delete(e.staged, productID)
	e.mu.Unlock()
}

// ResetAll descarta todas las ediciones en curso.
func (e *Engine) ResetAll() {
	e.mu.Lock()
	e.staged = make(map[string]int)
	e.mu.Unlock()
}
