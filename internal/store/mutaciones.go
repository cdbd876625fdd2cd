package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/dto"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// Every mutation follows the same contract: validate client-side, issue the
// request, and on success invalidate-and-reload via FetchAll. The client
// never patches its copy optimistically: after a successful sell the stock
// shown always comes from the refetched list. Nothing retries automatically.

func (s *Store) CrearProducto(ctx context.Context, req dto.GuardarProductoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	p, err := s.api.CrearProducto(ctx, req)
	if err != nil {
		return err
	}
	log.Info().Int64("id", p.ID).Str("nombre", p.Nombre).Msg("producto creado")
	return s.FetchAll(ctx)
}

func (s *Store) ActualizarProducto(ctx context.Context, id int64, req dto.GuardarProductoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.api.ActualizarProducto(ctx, id, req); err != nil {
		return err
	}
	log.Info().Int64("id", id).Msg("producto actualizado")
	return s.FetchAll(ctx)
}

func (s *Store) EliminarProducto(ctx context.Context, id int64) error {
	if err := s.api.EliminarProducto(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("id", id).Msg("producto eliminado")
	return s.FetchAll(ctx)
}

// Vender decrements stock by cantidad on the backend, recording a sale.
// The quantity must be a positive integer; that is checked before any
// request goes out.
func (s *Store) Vender(ctx context.Context, id int64, cantidad int) error {
	req := dto.VenderRequest{Cantidad: cantidad}
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.api.Vender(ctx, id, cantidad); err != nil {
		return err
	}
	log.Info().Int64("id", id).Int("cantidad", cantidad).Msg("venta registrada")
	return s.FetchAll(ctx)
}

func (s *Store) CrearCategoria(ctx context.Context, nombre string) error {
	_, err := s.crearCategoria(ctx, nombre)
	return err
}

func (s *Store) ActualizarCategoria(ctx context.Context, id int64, nombre string) error {
	req := dto.GuardarCategoriaRequest{Nombre: nombre}
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.api.ActualizarCategoria(ctx, id, req); err != nil {
		return err
	}
	return s.FetchAll(ctx)
}

// EliminarCategoria surfaces the backend rejection verbatim when the
// category is still referenced by products or brands.
func (s *Store) EliminarCategoria(ctx context.Context, id int64) error {
	if err := s.api.EliminarCategoria(ctx, id); err != nil {
		return err
	}
	return s.FetchAll(ctx)
}

func (s *Store) CrearMarca(ctx context.Context, nombre string, categoriaIDs []int64) error {
	_, err := s.crearMarca(ctx, nombre, categoriaIDs)
	return err
}

func (s *Store) ActualizarMarca(ctx context.Context, id int64, nombre string, categoriaIDs []int64) error {
	req := dto.GuardarMarcaRequest{Nombre: nombre, Categorias: refs(categoriaIDs)}
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.api.ActualizarMarca(ctx, id, req); err != nil {
		return err
	}
	return s.FetchAll(ctx)
}

func (s *Store) EliminarMarca(ctx context.Context, id int64) error {
	if err := s.api.EliminarMarca(ctx, id); err != nil {
		return err
	}
	return s.FetchAll(ctx)
}

// ─── Alta rápida ─────────────────────────────────────────────────────────────

// AltaRapidaCategoria creates a category inline from the product form flow,
// refreshes the master data and returns the created entity as found in the
// refreshed list, so the caller can select it programmatically. On failure
// the previous state is untouched.
func (s *Store) AltaRapidaCategoria(ctx context.Context, nombre string) (*model.Categoria, error) {
	creada, err := s.crearCategoria(ctx, nombre)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Categorias {
		if s.data.Categorias[i].ID == creada.ID {
			c := s.data.Categorias[i]
			return &c, nil
		}
	}
	// Refresh raced the read replica; the created entity is still the answer.
	return creada, nil
}

// AltaRapidaMarca creates a brand inline, optionally linked to the currently
// selected category, then refreshes and returns the entity from the new list.
func (s *Store) AltaRapidaMarca(ctx context.Context, nombre string, categoriaID int64) (*model.Marca, error) {
	var ids []int64
	if categoriaID != 0 {
		ids = []int64{categoriaID}
	}
	creada, err := s.crearMarca(ctx, nombre, ids)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Marcas {
		if s.data.Marcas[i].ID == creada.ID {
			m := s.data.Marcas[i]
			return &m, nil
		}
	}
	return creada, nil
}

func (s *Store) crearCategoria(ctx context.Context, nombre string) (*model.Categoria, error) {
	req := dto.GuardarCategoriaRequest{Nombre: nombre}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	cat, err := s.api.CrearCategoria(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().Int64("id", cat.ID).Str("nombre", cat.Nombre).Msg("categoria creada")
	if err := s.FetchAll(ctx); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Store) crearMarca(ctx context.Context, nombre string, categoriaIDs []int64) (*model.Marca, error) {
	req := dto.GuardarMarcaRequest{Nombre: nombre, Categorias: refs(categoriaIDs)}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := s.api.CrearMarca(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().Int64("id", m.ID).Str("nombre", m.Nombre).Msg("marca creada")
	if err := s.FetchAll(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func refs(ids []int64) []dto.RefID {
	out := make([]dto.RefID, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.RefID{ID: id})
	}
	return out
}
