// Package api is the typed HTTP client for the inventory backend. Every
// method is a single request/response cycle; failures come back classified
// through apierror. No method retries on its own.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/apierror"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/dto"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// Client talks to the backend REST API. Construct with New; the http.Client
// must carry the session transport so requests go out authenticated.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// ─── Productos ───────────────────────────────────────────────────────────────

// ListarProductos fetches the product list. A non-empty buscar is passed as
// the server-side ?search= name filter.
func (c *Client) ListarProductos(ctx context.Context, buscar string) ([]model.Producto, error) {
	query := url.Values{}
	if buscar != "" {
		query.Set("search", buscar)
	}
	var productos []model.Producto
	if err := c.do(ctx, http.MethodGet, "/productos", query, nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (c *Client) CrearProducto(ctx context.Context, req dto.GuardarProductoRequest) (*model.Producto, error) {
	var p model.Producto
	if err := c.do(ctx, http.MethodPost, "/productos", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ActualizarProducto(ctx context.Context, id int64, req dto.GuardarProductoRequest) (*model.Producto, error) {
	var p model.Producto
	if err := c.do(ctx, http.MethodPut, "/productos/"+itoa(id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) EliminarProducto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/productos/"+itoa(id), nil, nil, nil)
}

// Vender decrements stock by cantidad and records a sale on the backend.
// The quantity travels as a query parameter per the backend contract.
func (c *Client) Vender(ctx context.Context, id int64, cantidad int) (*model.Producto, error) {
	query := url.Values{}
	query.Set("cantidad", strconv.Itoa(cantidad))
	var p model.Producto
	if err := c.do(ctx, http.MethodPut, "/productos/"+itoa(id)+"/vender", query, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ─── Categorias ──────────────────────────────────────────────────────────────

func (c *Client) ListarCategorias(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	if err := c.do(ctx, http.MethodGet, "/categorias", nil, nil, &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (c *Client) CrearCategoria(ctx context.Context, req dto.GuardarCategoriaRequest) (*model.Categoria, error) {
	var cat model.Categoria
	if err := c.do(ctx, http.MethodPost, "/categorias", nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) ActualizarCategoria(ctx context.Context, id int64, req dto.GuardarCategoriaRequest) (*model.Categoria, error) {
	var cat model.Categoria
	if err := c.do(ctx, http.MethodPut, "/categorias/"+itoa(id), nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// EliminarCategoria may be rejected by the backend when the category is still
// referenced by products or brands; that rejection surfaces verbatim.
func (c *Client) EliminarCategoria(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/categorias/"+itoa(id), nil, nil, nil)
}

// ─── Marcas ──────────────────────────────────────────────────────────────────

func (c *Client) ListarMarcas(ctx context.Context) ([]model.Marca, error) {
	var marcas []model.Marca
	if err := c.do(ctx, http.MethodGet, "/marcas", nil, nil, &marcas); err != nil {
		return nil, err
	}
	return marcas, nil
}

func (c *Client) CrearMarca(ctx context.Context, req dto.GuardarMarcaRequest) (*model.Marca, error) {
	var m model.Marca
	if err := c.do(ctx, http.MethodPost, "/marcas", nil, req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) ActualizarMarca(ctx context.Context, id int64, req dto.GuardarMarcaRequest) (*model.Marca, error) {
	var m model.Marca
	if err := c.do(ctx, http.MethodPut, "/marcas/"+itoa(id), nil, req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) EliminarMarca(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/marcas/"+itoa(id), nil, nil, nil)
}

// ─── Ventas ──────────────────────────────────────────────────────────────────

// ListarVentas fetches the full sales ledger. Filtering and sorting are
// client-side concerns (see internal/ledger).
func (c *Client) ListarVentas(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	if err := c.do(ctx, http.MethodGet, "/ventas", nil, nil, &ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

// ─── Plumbing ────────────────────────────────────────────────────────────────

// do issues one request and decodes the answer into out (ignored when nil).
// Error classification: request construction → Local, transport failure →
// Red, non-2xx → FromResponse, body decode failure → Local.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apierror.NewLocal(fmt.Errorf("api: marshal body: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apierror.NewLocal(fmt.Errorf("api: create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierror.NewRed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return apierror.FromResponse(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierror.NewLocal(fmt.Errorf("api: decode response: %w", err))
	}
	return nil
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
