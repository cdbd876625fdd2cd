package apierror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromResponseRechazoConMensaje(t *testing.T) {
	cases := []struct {
		nombre string
		body   string
		esper  string
	}{
		{"json string", `"No se puede eliminar: categoria en uso"`, "No se puede eliminar: categoria en uso"},
		{"objeto message", `{"message":"Stock insuficiente para realizar la venta"}`, "Stock insuficiente para realizar la venta"},
		{"objeto detail", `{"detail":"Producto no encontrado"}`, "Producto no encontrado"},
		{"texto plano", `Stock insuficiente`, "Stock insuficiente"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			err := FromResponse(400, []byte(tc.body))
			assert.Equal(t, Rechazo, err.Tipo)
			assert.Equal(t, tc.esper, err.Detalle, "4xx message shown verbatim")
		})
	}
}

func TestFromResponseSinMensajeUsable(t *testing.T) {
	err := FromResponse(400, []byte(`{"timestamp":"...","status":400}`))
	assert.Equal(t, Servidor, err.Tipo)
	assert.Equal(t, 400, err.Estado)
	assert.Contains(t, err.Detalle, "400")
}

func TestFromResponseServerFault(t *testing.T) {
	err := FromResponse(500, []byte(`{"message":"boom interno"}`))
	// 5xx never surfaces its body, only the generic text with the status
	assert.Equal(t, Servidor, err.Tipo)
	assert.Equal(t, 500, err.Estado)
	assert.NotContains(t, err.Detalle, "boom")
}

func TestFromResponseIgnoraHTML(t *testing.T) {
	err := FromResponse(404, []byte(`<html><body>Not Found</body></html>`))
	assert.Equal(t, Servidor, err.Tipo)
}

func TestValidacionMensajeConCampos(t *testing.T) {
	err := NewValidacion(map[string]string{"precio": "menor al costo"})
	assert.Equal(t, Validacion, err.Tipo)
	assert.Contains(t, err.Mensaje(), "precio: menor al costo")
}

func TestEs(t *testing.T) {
	err := NewRed(errors.New("connection refused"))
	assert.True(t, Es(err, Red))
	assert.False(t, Es(err, Servidor))
	assert.False(t, Es(errors.New("otro"), Red))
}
