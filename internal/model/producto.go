package model

import (
	"github.com/shopspring/decimal"
)

// Producto is the wire representation served by GET /productos.
// PrecioCosto, StockMinimo, Categoria and Marca are nullable on the backend;
// MargenGanancia is computed server-side (percentage over cost).
type Producto struct {
	ID             int64            `json:"id"`
	Nombre         string           `json:"nombre"`
	Precio         decimal.Decimal  `json:"precio"`
	Stock          int              `json:"stock"`
	PrecioCosto    *decimal.Decimal `json:"precioCosto"`
	StockMinimo    *int             `json:"stockMinimo"`
	Categoria      *Categoria       `json:"categoria"`
	Marca          *Marca           `json:"marca"`
	MargenGanancia *decimal.Decimal `json:"margenGanancia"`
}

// Costo returns the cost price, treating a missing cost as zero.
func (p *Producto) Costo() decimal.Decimal {
	if p.PrecioCosto == nil {
		return decimal.Zero
	}
	return *p.PrecioCosto
}

// Minimo returns the minimum-stock threshold, treating a missing value as zero.
func (p *Producto) Minimo() int {
	if p.StockMinimo == nil {
		return 0
	}
	return *p.StockMinimo
}

// NombreCategoria returns the category name or "" when unassigned.
func (p *Producto) NombreCategoria() string {
	if p.Categoria == nil {
		return ""
	}
	return p.Categoria.Nombre
}

// NombreMarca returns the brand name or "" when unassigned.
func (p *Producto) NombreMarca() string {
	if p.Marca == nil {
		return ""
	}
	return p.Marca.Nombre
}

// Margen returns the server-computed profit margin or zero when absent.
func (p *Producto) Margen() decimal.Decimal {
	if p.MargenGanancia == nil {
		return decimal.Zero
	}
	return *p.MargenGanancia
}
