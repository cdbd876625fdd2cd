package dto

import (
	"github.com/shopspring/decimal"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RefID is the {"id": N} reference envelope the backend expects for
// categoria/marca associations on product payloads.
type RefID struct {
	ID int64 `json:"id"`
}

// GuardarProductoRequest is the body for POST /productos and PUT /productos/{id}.
// The backend takes the full entity shape on both operations.
type GuardarProductoRequest struct {
	Nombre      string           `json:"nombre"        validate:"required,min=2,max=120"`
	Precio      decimal.Decimal  `json:"precio"        validate:"required,min=0"`
	Stock       int              `json:"stock"         validate:"min=0"`
	PrecioCosto *decimal.Decimal `json:"precioCosto,omitempty"`
	StockMinimo *int             `json:"stockMinimo,omitempty" validate:"omitempty,min=0"`
	Categoria   *RefID           `json:"categoria,omitempty"`
	Marca       *RefID           `json:"marca,omitempty"`
}

// Validate runs tag validation plus the price/cost invariant: the sale price
// must not be below the cost price at submit time. Returns a Validacion
// error before any request is sent.
func (r *GuardarProductoRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.PrecioCosto != nil && r.Precio.LessThan(*r.PrecioCosto) {
		return fieldError("precio", "el precio de venta no puede ser menor al costo")
	}
	return nil
}

// DesdeProducto prefills an edit request from the current server copy, so a
// partial edit resubmits the unchanged fields as-is.
func DesdeProducto(p *model.Producto) GuardarProductoRequest {
	req := GuardarProductoRequest{
		Nombre:      p.Nombre,
		Precio:      p.Precio,
		Stock:       p.Stock,
		PrecioCosto: p.PrecioCosto,
		StockMinimo: p.StockMinimo,
	}
	if p.Categoria != nil {
		req.Categoria = &RefID{ID: p.Categoria.ID}
	}
	if p.Marca != nil {
		req.Marca = &RefID{ID: p.Marca.ID}
	}
	return req
}

// VenderRequest carries the quantity for PUT /productos/{id}/vender.
// The quantity travels as a query parameter, not a body.
type VenderRequest struct {
	Cantidad int `validate:"required,gt=0"`
}

func (r *VenderRequest) Validate() error {
	if r.Cantidad <= 0 {
		return fieldError("cantidad", "la cantidad debe ser un entero mayor a 0")
	}
	return nil
}
