// Package store coordinates master-data state: it loads the three lists as
// one unit, exposes a consistent snapshot and funnels every mutation through
// the same invalidate-and-reload contract. Views own copies of the snapshot;
// nothing is patched incrementally.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/api"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// Snapshot is the current master-data state. On a failed refresh Err is set
// and the previously loaded lists stay in place (stale but present).
type Snapshot struct {
	Productos  []model.Producto
	Categorias []model.Categoria
	Marcas     []model.Marca

	Loading     bool
	Err         error
	UltimaCarga time.Time
}

// Store is the data-fetch coordinator over the API client.
type Store struct {
	api *api.Client

	mu   sync.RWMutex
	gen  uint64 // bumped per FetchAll; stale responses must not overwrite fresher state
	data Snapshot
}

func New(apiClient *api.Client) *Store {
	return &Store{api: apiClient}
}

// Snapshot returns a copy of the current state. The slices are shared
// read-only views; a refresh replaces them wholesale instead of mutating.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// FetchAll loads productos, categorias and marcas concurrently and replaces
// the snapshot as one unit. The three reads all run to completion (the first
// failure does not cancel the others) but the combined operation fails if
// any one of them does. Writes are guarded by a generation counter so a slow
// response from a superseded refresh cannot clobber fresher data.
func (s *Store) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.data.Loading = true
	s.mu.Unlock()

	var (
		productos  []model.Producto
		categorias []model.Categoria
		marcas     []model.Marca
	)

	// Plain Group, not WithContext: a failed read must not cancel its peers.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		productos, err = s.api.ListarProductos(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		categorias, err = s.api.ListarCategorias(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		marcas, err = s.api.ListarMarcas(ctx)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer FetchAll superseded this one; drop the result.
		return s.data.Err
	}
	s.data.Loading = false
	if err != nil {
		s.data.Err = err
		log.Error().Err(err).Msg("fallo la carga de datos maestros")
		return err
	}
	s.data.Productos = productos
	s.data.Categorias = categorias
	s.data.Marcas = marcas
	s.data.Err = nil
	s.data.UltimaCarga = time.Now()
	log.Debug().
		Int("productos", len(productos)).
		Int("categorias", len(categorias)).
		Int("marcas", len(marcas)).
		Msg("datos maestros actualizados")
	return nil
}

// ProductoPorID looks the product up in the current snapshot.
func (s *Store) ProductoPorID(id int64) (*model.Producto, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Productos {
		if s.data.Productos[i].ID == id {
			p := s.data.Productos[i]
			return &p, true
		}
	}
	return nil, false
}

// MarcasParaCategoria returns the brands selectable for a category: those
// associated with it plus any brand whose associations include the catch-all
// "Otros" category. With categoriaID 0 every brand is returned.
func (s *Store) MarcasParaCategoria(categoriaID int64) []model.Marca {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if categoriaID == 0 {
		return s.data.Marcas
	}
	var out []model.Marca
	for _, m := range s.data.Marcas {
		if m.TieneCategoria(categoriaID) || m.EsComodin() {
			out = append(out, m)
		}
	}
	return out
}

// FiltrarProductos applies the client-side text search over product, category
// and brand name, case-insensitively. An empty term returns the input as-is.
func FiltrarProductos(productos []model.Producto, termino string) []model.Producto {
	termino = strings.ToLower(strings.TrimSpace(termino))
	if termino == "" {
		return productos
	}
	var out []model.Producto
	for _, p := range productos {
		if strings.Contains(strings.ToLower(p.Nombre), termino) ||
			strings.Contains(strings.ToLower(p.NombreCategoria()), termino) ||
			strings.Contains(strings.ToLower(p.NombreMarca()), termino) {
			out = append(out, p)
		}
	}
	return out
}
