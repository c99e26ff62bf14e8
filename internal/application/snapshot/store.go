// Package snapshot mantiene el último árbol de inventario cargado desde el
// gateway como única fuente de verdad para la capa de presentación.
package snapshot

import (
	"context"
	"sync"

	"github.com/tu-usuario/poulstock/internal/application/ports"
	"github.com/tu-usuario/poulstock/internal/domain/entity"
)

// Listener recibe el snapshot recién instalado tras cada carga exitosa.
type Listener func(entity.Snapshot)

// Store sostiene el último snapshot cargado. La carga es todo-o-nada: si el
// gateway falla se conserva el snapshot anterior y el error sube al llamador.
// Si varias cargas están en vuelo a la vez, gana la que termina más tarde:
// el snapshot instalado refleja la carga completada más recientemente, no la
// iniciada más recientemente.
type Store struct {
	gw ports.Gateway

	mu        sync.Mutex
	snap      entity.Snapshot
	listeners []Listener
}

// NewStore construye el store vacío sobre un gateway.
func NewStore(gw ports.Gateway) *Store {
	return &Store{gw: gw}
}

// OnLoaded registra un listener que se invoca tras cada carga exitosa,
// con una copia del snapshot instalado. El registro no es desinscribible:
// los consumidores viven tanto como el store.
func (s *Store) OnLoaded(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Load reemplaza el snapshot por uno recién traído del gateway y lo devuelve.
// En fallo, el snapshot anterior queda intacto. La instalación ocurre al
// completarse la respuesta, de modo que entre cargas solapadas queda
// instalada la última en completar.
func (s *Store) Load(ctx context.Context) (entity.Snapshot, error) {
	snap, err := s.gw.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snap = snap
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap.Clone())
	}
	return snap.Clone(), nil
}

// Current devuelve una copia del último snapshot cargado (vacío al inicio).
// Las lecturas devuelven copias: nadie retiene referencias mutables a un
// snapshot superado.
func (s *Store) Current() entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return entity.Snapshot{}
	}
	return s.snap.Clone()
}

// Reset descarta el snapshot sostenido. Pensado para aislamiento entre tests.
func (s *Store) Reset() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}
