package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

func producto(precio, costo string, stock, minimo int) model.Producto {
	p := model.Producto{
		Precio: decimal.RequireFromString(precio),
		Stock:  stock,
	}
	if costo != "" {
		c := decimal.RequireFromString(costo)
		p.PrecioCosto = &c
	}
	if minimo >= 0 {
		p.StockMinimo = &minimo
	}
	return p
}

func TestCalcularListaVacia(t *testing.T) {
	r := Calcular(nil)

	assert.True(t, r.ValorInventario.IsZero())
	assert.True(t, r.CapitalInvertido.IsZero())
	assert.True(t, r.GananciaProyectada.IsZero())
	assert.Equal(t, 0, r.StockCritico)
}

func TestCalcularAgregados(t *testing.T) {
	productos := []model.Producto{
		producto("100", "60", 5, 0),
		producto("50", "55", 2, 0),
	}

	r := Calcular(productos)

	// valor = 100*5 + 50*2
	assert.True(t, r.ValorInventario.Equal(decimal.NewFromInt(600)), "valor: %s", r.ValorInventario)
	// capital = 60*5 + 55*2
	assert.True(t, r.CapitalInvertido.Equal(decimal.NewFromInt(410)), "capital: %s", r.CapitalInvertido)
	// ganancia = (100-60)*5 + (50-55)*2 = 200 - 10
	assert.True(t, r.GananciaProyectada.Equal(decimal.NewFromInt(190)), "ganancia: %s", r.GananciaProyectada)
	// both minimums 0 and stock > 0, nothing critical
	assert.Equal(t, 0, r.StockCritico)
}

func TestCalcularCostoFaltanteEsCero(t *testing.T) {
	productos := []model.Producto{producto("80", "", 3, -1)}

	r := Calcular(productos)

	assert.True(t, r.CapitalInvertido.IsZero())
	// without a cost the full sale value is projected profit
	assert.True(t, r.GananciaProyectada.Equal(decimal.NewFromInt(240)))
}

func TestEsCritico(t *testing.T) {
	enLimite := producto("10", "5", 3, 3)
	porDebajo := producto("10", "5", 1, 3)
	porEncima := producto("10", "5", 4, 3)
	sinMinimo := producto("10", "5", 0, -1) // missing minimo counts as 0

	assert.True(t, EsCritico(&enLimite))
	assert.True(t, EsCritico(&porDebajo))
	assert.False(t, EsCritico(&porEncima))
	assert.True(t, EsCritico(&sinMinimo))

	conStock := producto("10", "5", 1, -1)
	assert.False(t, EsCritico(&conStock))
}

func TestDeficitReposicion(t *testing.T) {
	enLimite := producto("10", "5", 3, 3)
	faltantes := producto("10", "5", 1, 4)
	sobrado := producto("10", "5", 9, 4)

	assert.Equal(t, 0, DeficitReposicion(&enLimite), "at threshold: deficit 0")
	assert.Equal(t, 3, DeficitReposicion(&faltantes))
	assert.Equal(t, 0, DeficitReposicion(&sobrado), "never negative")
}

func TestGananciaPorProducto(t *testing.T) {
	p := producto("100", "60", 5, 0)

	assert.True(t, GananciaUnitaria(&p).Equal(decimal.NewFromInt(40)))
	assert.True(t, GananciaTotal(&p).Equal(decimal.NewFromInt(200)))
}

func TestClasificarMargen(t *testing.T) {
	assert.Equal(t, MargenCritico, ClasificarMargen(decimal.NewFromInt(9)))
	assert.Equal(t, MargenBajo, ClasificarMargen(decimal.NewFromInt(10)))
	assert.Equal(t, MargenBajo, ClasificarMargen(decimal.NewFromInt(20)))
	assert.Equal(t, MargenSano, ClasificarMargen(decimal.NewFromFloat(20.1)))
}
