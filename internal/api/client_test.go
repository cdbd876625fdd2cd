package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/apierror"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/dto"
)

func TestVenderEnviaCantidadComoQuery(t *testing.T) {
	var gotPath, gotQuery, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotMethod = r.Method
		w.Write([]byte(`{"id":7,"nombre":"Yerba","precio":100,"stock":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	p, err := c.Vender(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/productos/7/vender", gotPath)
	assert.Equal(t, "cantidad=3", gotQuery)
	assert.Equal(t, 2, p.Stock)
}

func TestListarProductosConBusqueda(t *testing.T) {
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.ListarProductos(context.Background(), "yerba")

	require.NoError(t, err)
	assert.Equal(t, "yerba", gotSearch)
}

func TestRechazoConMensajeVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Stock insuficiente para realizar la venta"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.Vender(context.Background(), 1, 5)

	var e *apierror.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apierror.Rechazo, e.Tipo)
	assert.Equal(t, "Stock insuficiente para realizar la venta", e.Detalle)
}

func TestServidorSinMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.ListarVentas(context.Background())

	var e *apierror.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apierror.Servidor, e.Tipo)
	assert.Equal(t, http.StatusInternalServerError, e.Estado)
}

func TestFalloDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, http.DefaultClient)
	_, err := c.ListarCategorias(context.Background())

	assert.True(t, apierror.Es(err, apierror.Red))
}

func TestEliminarSinCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	assert.NoError(t, c.EliminarProducto(context.Background(), 4))
}

func TestCrearMarcaEnviaReferencias(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"id":9,"nombre":"Acme","categorias":[{"id":2,"nombre":"Bebidas"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	m, err := c.CrearMarca(context.Background(), dto.GuardarMarcaRequest{
		Nombre:     "Acme",
		Categorias: []dto.RefID{{ID: 2}},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Acme","categorias":[{"id":2}]}`, gotBody)
	assert.Equal(t, int64(9), m.ID)
	assert.True(t, m.TieneCategoria(2))
}
