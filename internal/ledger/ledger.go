// Package ledger implements the sales-history view: it fetches the
// transaction list on its own, applies client-side date/text filtering and
// column sorting, and recomputes the revenue figures over the visible subset.
package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/api"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// Vista owns an independent copy of the sales ledger, refreshed wholesale.
type Vista struct {
	api    *api.Client
	ventas []model.Venta
}

func NewVista(apiClient *api.Client) *Vista {
	return &Vista{api: apiClient}
}

// Cargar refetches the transaction list. On failure the prior records stay
// in place.
func (v *Vista) Cargar(ctx context.Context) error {
	ventas, err := v.api.ListarVentas(ctx)
	if err != nil {
		return err
	}
	v.ventas = ventas
	return nil
}

// Ventas returns the last successfully loaded records.
func (v *Vista) Ventas() []model.Venta { return v.ventas }

// ─── Filtering ───────────────────────────────────────────────────────────────

// Filtro is the client-side ledger filter. Both date bounds are optional and
// inclusive at day granularity; Producto is a case-insensitive substring
// match on the denormalized product name.
type Filtro struct {
	Desde    *time.Time
	Hasta    *time.Time
	Producto string
}

// Filtrar returns the records matching the filter, preserving input order.
func Filtrar(ventas []model.Venta, f Filtro) []model.Venta {
	termino := strings.ToLower(strings.TrimSpace(f.Producto))
	var out []model.Venta
	for _, venta := range ventas {
		dia := trunc(venta.FechaVenta.Time)
		if f.Desde != nil && dia.Before(trunc(*f.Desde)) {
			continue
		}
		if f.Hasta != nil && dia.After(trunc(*f.Hasta)) {
			continue
		}
		if termino != "" && !strings.Contains(strings.ToLower(venta.NombreProducto), termino) {
			continue
		}
		out = append(out, venta)
	}
	return out
}

func trunc(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ─── Sorting ─────────────────────────────────────────────────────────────────

// Clave is a sortable ledger column.
type Clave int

const (
	PorFecha Clave = iota
	PorProducto
	PorCantidad
	PorMonto
)

// Orden is the single active sort: one key plus a direction.
type Orden struct {
	Clave       Clave
	Descendente bool
}

// Alternar returns the sort after selecting clave: re-selecting the active
// key toggles the direction, a new key starts ascending.
func (o Orden) Alternar(clave Clave) Orden {
	if o.Clave == clave {
		return Orden{Clave: clave, Descendente: !o.Descendente}
	}
	return Orden{Clave: clave}
}

// Ordenar sorts the records in place by the active key. Ties carry no
// guaranteed order.
func Ordenar(ventas []model.Venta, o Orden) {
	less := func(a, b *model.Venta) bool {
		switch o.Clave {
		case PorProducto:
			return strings.ToLower(a.NombreProducto) < strings.ToLower(b.NombreProducto)
		case PorCantidad:
			return a.CantidadVendida < b.CantidadVendida
		case PorMonto:
			return a.MontoTotal.LessThan(b.MontoTotal)
		default:
			return a.FechaVenta.Before(b.FechaVenta.Time)
		}
	}
	sort.Slice(ventas, func(i, j int) bool {
		if o.Descendente {
			return less(&ventas[j], &ventas[i])
		}
		return less(&ventas[i], &ventas[j])
	})
}

// ─── Totals ──────────────────────────────────────────────────────────────────

// Totales are the figures recomputed over the filtered subset.
type Totales struct {
	Monto        decimal.Decimal // Σ montoTotal
	Unidades     int             // Σ cantidadVendida
	GananciaReal decimal.Decimal // Σ (montoTotal − costoUnitario × cantidad), missing snapshot = 0
}

func CalcularTotales(ventas []model.Venta) Totales {
	t := Totales{Monto: decimal.Zero, GananciaReal: decimal.Zero}
	for i := range ventas {
		v := &ventas[i]
		t.Monto = t.Monto.Add(v.MontoTotal)
		t.Unidades += v.CantidadVendida
		t.GananciaReal = t.GananciaReal.Add(v.GananciaReal())
	}
	return t
}

// ─── Presets ─────────────────────────────────────────────────────────────────

// The quick-range presets only set the two date bounds; nothing else changes.

// PresetHoy bounds the filter to the current day.
func PresetHoy(now time.Time) Filtro {
	dia := trunc(now)
	return Filtro{Desde: &dia, Hasta: &dia}
}

// PresetUltimos7Dias covers today and the six days before it.
func PresetUltimos7Dias(now time.Time) Filtro {
	hasta := trunc(now)
	desde := hasta.AddDate(0, 0, -6)
	return Filtro{Desde: &desde, Hasta: &hasta}
}

// PresetMesActual covers the current calendar month up to today.
func PresetMesActual(now time.Time) Filtro {
	hasta := trunc(now)
	desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Filtro{Desde: &desde, Hasta: &hasta}
}

// PresetLimpiar removes both bounds.
func PresetLimpiar() Filtro { return Filtro{} }
