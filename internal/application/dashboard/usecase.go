// Package dashboard orquesta el núcleo del tablero: gateway, snapshot,
// ediciones de cantidad, alertas y proyecciones, sin dependencia alguna de
// la capa de presentación. La UI se engancha mediante listeners tipados.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/tu-usuario/poulstock/internal/application/alerts"
	"github.com/tu-usuario/poulstock/internal/application/ports"
	"github.com/tu-usuario/poulstock/internal/application/snapshot"
	"github.com/tu-usuario/poulstock/internal/application/staging"
	"github.com/tu-usuario/poulstock/internal/application/view"
	"github.com/tu-usuario/poulstock/internal/domain"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

// DefaultIcon es el icono aplicado a una categoría creada sin icono.
const DefaultIcon = "fa-solid fa-box"

// UseCase es el caso de uso raíz del tablero. Toda mutación pasa por el
// gateway y, si prospera, termina en una recarga completa del snapshot.
type UseCase struct {
	gw      ports.Gateway
	store   *snapshot.Store
	staging *staging.Engine

	mu           sync.Mutex
	committedFns []func(entity.Product)
	thresholdFns []func(categoryID string, threshold int)
}

// New construye el caso de uso sobre un gateway ya configurado.
func New(gw ports.Gateway) *UseCase {
	store := snapshot.NewStore(gw)
	return &UseCase{
		gw:      gw,
		store:   store,
		staging: staging.NewEngine(gw, store),
	}
}

// Store expone el snapshot store (para tests y consumidores avanzados).
func (uc *UseCase) Store() *snapshot.Store { return uc.store }

// ── Registro de eventos ───────────────────────────────────────────────────────

// OnSnapshotLoaded registra un listener para cada carga exitosa del snapshot.
func (uc *UseCase) OnSnapshotLoaded(fn snapshot.Listener) {
	uc.store.OnLoaded(fn)
}

// OnProductCommitted registra un listener para cada cantidad confirmada.
// Recibe el producto con su valor recién confirmado (post-recarga).
func (uc *UseCase) OnProductCommitted(fn func(entity.Product)) {
	uc.mu.Lock()
	uc.committedFns = append(uc.committedFns, fn)
	uc.mu.Unlock()
}

// OnThresholdChanged registra un listener para cada umbral guardado.
func (uc *UseCase) OnThresholdChanged(fn func(categoryID string, threshold int)) {
	uc.mu.Lock()
	uc.thresholdFns = append(uc.thresholdFns, fn)
	uc.mu.Unlock()
}

func (uc *UseCase) emitCommitted(p entity.Product) {
	uc.mu.Lock()
	fns := make([]func(entity.Product), len(uc.committedFns))
	copy(fns, uc.committedFns)
	uc.mu.Unlock()
	for _, fn := range fns {
		fn(p)
	}
}

func (uc *UseCase) emitThreshold(categoryID string, threshold int) {
	uc.mu.Lock()
	fns := make([]func(string, int), len(uc.thresholdFns))
	copy(fns, uc.thresholdFns)
	uc.mu.Unlock()
	for _, fn := range fns {
		fn(categoryID, threshold)
	}
}

// ── Lecturas derivadas ────────────────────────────────────────────────────────

// Reload trae un snapshot fresco e instala el resultado. Las ediciones en
// curso se descartan al completarse (ver staging.Engine).
func (uc *UseCase) Reload(ctx context.Context) (entity.Snapshot, error) {
	return uc.store.Load(ctx)
}

// Snapshot devuelve una copia del snapshot vigente.
func (uc *UseCase) Snapshot() entity.Snapshot {
	return uc.store.Current()
}

// View proyecta el snapshot vigente con los filtros dados.
func (uc *UseCase) View(f view.Filter) view.Projection {
	return view.Project(uc.store.Current(), f)
}

// Alerts devuelve los grupos de alerta del snapshot vigente.
func (uc *UseCase) Alerts() []entity.AlertGroup {
	return alerts.Compute(uc.store.Current())
}

// AlertCount devuelve el total de productos en alerta.
func (uc *UseCase) AlertCount() int {
	return alerts.Count(uc.store.Current())
}

// ── Edición de cantidades ─────────────────────────────────────────────────────

// Bump ajusta la cantidad en edición de un producto (+1/-1).
func (uc *UseCase) Bump(productID string, delta int) (int, error) {
	return uc.staging.Bump(productID, delta)
}

// Dirty indica si el producto tiene una edición pendiente de confirmar.
func (uc *UseCase) Dirty(productID string) bool {
	return uc.staging.Dirty(productID)
}

// DiscardQty abandona la edición de un producto.
func (uc *UseCase) DiscardQty(productID string) {
	uc.staging.Discard(productID)
}

// CommitQty confirma la cantidad editada de un producto y recarga. No-op si
// el producto no está sucio. Emite OnProductCommitted con el valor ya
// confirmado en el snapshot fresco.
func (uc *UseCase) CommitQty(ctx context.Context, productID string) error {
	if !uc.staging.Dirty(productID) {
		return nil
	}
	if err := uc.staging.Commit(ctx, productID); err != nil {
		return err
	}
	if p, _ := uc.store.Current().FindProduct(productID); p != nil {
		uc.emitCommitted(*p)
	}
	return nil
}

// ── Mutaciones de catálogo ────────────────────────────────────────────────────

// CreateCategory crea una categoría y recarga. El nombre se recorta; vacío
// se rechaza. Un nombre duplicado vuelve como *domain.ValidationError y el
// snapshot queda tal cual estaba.
func (uc *UseCase) CreateCategory(ctx context.Context, name, icon string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = DefaultIcon
	}
	cat, err := uc.gw.CreateCategory(ctx, name, icon)
	if err != nil {
		return nil, err
	}
	if _, err := uc.store.Load(ctx); err != nil {
		return cat, err
	}
	return cat, nil
}

// DeleteCategory elimina una categoría (cascada en el backend) y recarga.
func (uc *UseCase) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := uc.gw.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}
	_, err := uc.store.Load(ctx)
	return err
}

// CreateProduct crea un producto y recarga. Nombre y categoría son requeridos.
func (uc *UseCase) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.gw.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.store.Load(ctx); err != nil {
		return p, err
	}
	return p, nil
}

// UpdateProduct reemplaza los campos editables de un producto y recarga.
func (uc *UseCase) UpdateProduct(ctx context.Context, productID string, in ports.UpdateProductInput) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.gw.UpdateProduct(ctx, productID, in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.store.Load(ctx); err != nil {
		return p, err
	}
	return p, nil
}

// DeleteProduct elimina un producto y recarga.
func (uc *UseCase) DeleteProduct(ctx context.Context, productID string) error {
	if err := uc.gw.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	_, err := uc.store.Load(ctx)
	return err
}

// ── Umbrales ──────────────────────────────────────────────────────────────────

// SetThreshold guarda el umbral de una categoría y recarga.
func (uc *UseCase) SetThreshold(ctx context.Context, categoryID string, threshold int) error {
	if threshold < 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.gw.UpdateThreshold(ctx, categoryID, threshold); err != nil {
		return err
	}
	uc.emitThreshold(categoryID, threshold)
	_, err := uc.store.Load(ctx)
	return err
}

// SaveThresholds guarda varios umbrales a la vez: lanza todas las
// escrituras en paralelo, espera a que TODAS terminen (con o sin error) y
// solo entonces dispara una única recarga. El error devuelto agrega los
// fallos individuales y, en su caso, el de la recarga.
func (uc *UseCase) SaveThresholds(ctx context.Context, thresholds map[string]int) error {
	for _, t := range thresholds {
		if t < 0 {
			return domain.ErrInvalidInput
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, len(thresholds))
	i := 0
	for categoryID, threshold := range thresholds {
		wg.Add(1)
		go func(slot int, categoryID string, threshold int) {
			defer wg.Done()
			if err := uc.gw.UpdateThreshold(ctx, categoryID, threshold); err != nil {
				errs[slot] = err
				return
			}
			uc.emitThreshold(categoryID, threshold)
		}(i, categoryID, threshold)
		i++
	}
	wg.Wait()

	if _, err := uc.store.Load(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
