// Package metrics derives inventory figures from the in-memory product list.
// Everything here is pure and stateless: the caller recomputes over the
// current list (or a filtered subset) on every render pass.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// Resumen are the aggregate inventory figures shown on the dashboard cards.
type Resumen struct {
	ValorInventario    decimal.Decimal // Σ precio × stock
	CapitalInvertido   decimal.Decimal // Σ costo × stock, missing cost = 0
	GananciaProyectada decimal.Decimal // Σ (precio − costo) × stock
	StockCritico       int             // products with stock ≤ stockMinimo (missing minimo = 0)
}

// Calcular computes the aggregate figures over the given product list.
// An empty list yields all zeros.
func Calcular(productos []model.Producto) Resumen {
	var r Resumen
	r.ValorInventario = decimal.Zero
	r.CapitalInvertido = decimal.Zero
	r.GananciaProyectada = decimal.Zero
	for i := range productos {
		p := &productos[i]
		stock := decimal.NewFromInt(int64(p.Stock))
		r.ValorInventario = r.ValorInventario.Add(p.Precio.Mul(stock))
		r.CapitalInvertido = r.CapitalInvertido.Add(p.Costo().Mul(stock))
		r.GananciaProyectada = r.GananciaProyectada.Add(GananciaUnitaria(p).Mul(stock))
		if EsCritico(p) {
			r.StockCritico++
		}
	}
	return r
}

// GananciaUnitaria is precio − costo for one unit.
func GananciaUnitaria(p *model.Producto) decimal.Decimal {
	return p.Precio.Sub(p.Costo())
}

// GananciaTotal is the unit profit times current stock.
func GananciaTotal(p *model.Producto) decimal.Decimal {
	return GananciaUnitaria(p).Mul(decimal.NewFromInt(int64(p.Stock)))
}

// EsCritico reports whether the product sits at or below its minimum-stock
// threshold. A missing threshold counts as 0, so only an empty shelf trips it.
func EsCritico(p *model.Producto) bool {
	return p.Stock <= p.Minimo()
}

// DeficitReposicion is how many units are missing to reach the minimum,
// never negative. A critical product with deficit 0 is exactly at threshold.
func DeficitReposicion(p *model.Producto) int {
	if d := p.Minimo() - p.Stock; d > 0 {
		return d
	}
	return 0
}

// NivelMargen is the traffic-light classification of a profit margin.
type NivelMargen int

const (
	MargenCritico NivelMargen = iota // < 10%
	MargenBajo                       // 10–20%
	MargenSano                       // > 20%
)

func (n NivelMargen) String() string {
	switch n {
	case MargenCritico:
		return "critico"
	case MargenBajo:
		return "bajo"
	default:
		return "sano"
	}
}

var (
	margenDiez  = decimal.NewFromInt(10)
	margenVeint = decimal.NewFromInt(20)
)

// ClasificarMargen buckets the server-computed margin percentage.
func ClasificarMargen(margen decimal.Decimal) NivelMargen {
	switch {
	case margen.GreaterThan(margenVeint):
		return MargenSano
	case margen.GreaterThanOrEqual(margenDiez):
		return MargenBajo
	default:
		return MargenCritico
	}
}
