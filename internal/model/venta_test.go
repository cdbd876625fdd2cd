package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFechaLocalSinZonaHoraria(t *testing.T) {
	var v Venta
	body := `{"id":1,"fechaVenta":"2025-03-14T18:30:05","nombreProducto":"Yerba","cantidadVendida":2,"precioUnitario":100,"montoTotal":200}`

	require.NoError(t, json.Unmarshal([]byte(body), &v))

	assert.Equal(t, 2025, v.FechaVenta.Year())
	assert.Equal(t, time.March, v.FechaVenta.Month())
	assert.Equal(t, 18, v.FechaVenta.Hour())
}

func TestFechaLocalConFraccionDeSegundo(t *testing.T) {
	var f FechaLocal
	require.NoError(t, f.UnmarshalJSON([]byte(`"2025-03-14T18:30:05.123456"`)))
	assert.Equal(t, 123456000, f.Nanosecond())
}

func TestFechaLocalRFC3339(t *testing.T) {
	var f FechaLocal
	require.NoError(t, f.UnmarshalJSON([]byte(`"2025-03-14T18:30:05Z"`)))
	assert.Equal(t, 18, f.Hour())
}

func TestFechaLocalNula(t *testing.T) {
	var f FechaLocal
	require.NoError(t, f.UnmarshalJSON([]byte(`null`)))
	assert.True(t, f.IsZero())
}

func TestFechaLocalInvalida(t *testing.T) {
	var f FechaLocal
	assert.Error(t, f.UnmarshalJSON([]byte(`"14/03/2025"`)))
}

func TestGananciaRealConCosto(t *testing.T) {
	costo := decimal.NewFromInt(60)
	v := Venta{
		CantidadVendida: 2,
		MontoTotal:      decimal.NewFromInt(200),
		CostoUnitario:   &costo,
	}
	assert.True(t, decimal.NewFromInt(80).Equal(v.GananciaReal()))
}

func TestGananciaRealSinCostoRegistrado(t *testing.T) {
	v := Venta{
		CantidadVendida: 2,
		MontoTotal:      decimal.NewFromInt(200),
	}
	// missing snapshot counts as zero cost, the full amount reads as gain
	assert.True(t, decimal.NewFromInt(200).Equal(v.GananciaReal()))
}

func TestMarcaComodinYAsociaciones(t *testing.T) {
	m := Marca{Nombre: "Generica", Categorias: []Categoria{{ID: 11, Nombre: CategoriaOtros}}}
	assert.True(t, m.EsComodin())
	assert.True(t, m.TieneCategoria(11))
	assert.False(t, m.TieneCategoria(99))

	sinCategorias := Marca{Nombre: "Huerfana"}
	assert.False(t, sinCategorias.EsComodin())
}
