package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/dto"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/store"
)

func (a *app) productosCommand() *cli.Command {
	return &cli.Command{
		Name:   "productos",
		Usage:  "CRUD de productos y venta rapida",
		Before: a.requireAuth,
		Subcommands: []*cli.Command{
			a.productosListar(),
			a.productosCrear(),
			a.productosEditar(),
			a.productosEliminar(),
			a.productosVender(),
		},
	}
}

func (a *app) productosListar() *cli.Command {
	return &cli.Command{
		Name:  "listar",
		Usage: "Lista el inventario",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "buscar", Usage: "Filtro local por producto, categoria o marca"},
			&cli.StringFlag{Name: "nombre", Usage: "Filtro por nombre resuelto en el servidor (?search=)"},
		},
		Action: func(c *cli.Context) error {
			// The server-side name filter is a view-local fetch; the shared
			// snapshot always holds the unfiltered list.
			if nombre := c.String("nombre"); nombre != "" {
				productos, err := a.api.ListarProductos(c.Context, nombre)
				if err != nil {
					return err
				}
				renderProductos(store.FiltrarProductos(productos, c.String("buscar")))
				return nil
			}

			if err := a.store.FetchAll(c.Context); err != nil {
				return err
			}
			snap := a.store.Snapshot()
			renderProductos(store.FiltrarProductos(snap.Productos, c.String("buscar")))
			return nil
		},
	}
}

func productoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nombre", Usage: "Nombre del producto"},
		&cli.StringFlag{Name: "precio", Usage: "Precio de venta"},
		&cli.IntFlag{Name: "stock", Usage: "Stock actual", Value: -1},
		&cli.StringFlag{Name: "costo", Usage: "Precio de costo"},
		&cli.IntFlag{Name: "stock-minimo", Usage: "Umbral de stock minimo", Value: -1},
		&cli.Int64Flag{Name: "categoria", Usage: "ID de categoria existente"},
		&cli.Int64Flag{Name: "marca", Usage: "ID de marca existente"},
		&cli.StringFlag{Name: "nueva-categoria", Usage: "Alta rapida: crea la categoria y la asocia"},
		&cli.StringFlag{Name: "nueva-marca", Usage: "Alta rapida: crea la marca (ligada a la categoria elegida) y la asocia"},
	}
}

func (a *app) productosCrear() *cli.Command {
	return &cli.Command{
		Name:  "crear",
		Usage: "Registra un nuevo producto",
		Flags: productoFlags(),
		Action: func(c *cli.Context) error {
			req := dto.GuardarProductoRequest{Nombre: c.String("nombre")}
			if err := aplicarFlagsProducto(c, &req); err != nil {
				return err
			}
			if req.Stock < 0 {
				req.Stock = 0
			}
			if err := a.resolverAltasRapidas(c, &req); err != nil {
				return err
			}
			if err := a.store.CrearProducto(c.Context, req); err != nil {
				return err
			}
			exito("Producto creado con exito")
			return nil
		},
	}
}

func (a *app) productosEditar() *cli.Command {
	return &cli.Command{
		Name:  "editar",
		Usage: "Actualiza un producto existente; los campos omitidos se conservan",
		Flags: append([]cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "ID del producto", Required: true},
		}, productoFlags()...),
		Action: func(c *cli.Context) error {
			// Prefill from the latest server copy so unset flags resubmit
			// the current values.
			if err := a.store.FetchAll(c.Context); err != nil {
				return err
			}
			actual, ok := a.store.ProductoPorID(c.Int64("id"))
			if !ok {
				return cli.Exit(fmt.Sprintf("No existe un producto con ID %d", c.Int64("id")), 1)
			}

			req := dto.DesdeProducto(actual)
			if c.IsSet("nombre") {
				req.Nombre = c.String("nombre")
			}
			if err := aplicarFlagsProducto(c, &req); err != nil {
				return err
			}
			if err := a.resolverAltasRapidas(c, &req); err != nil {
				return err
			}
			if err := a.store.ActualizarProducto(c.Context, actual.ID, req); err != nil {
				return err
			}
			exito("Producto actualizado correctamente")
			return nil
		},
	}
}

// aplicarFlagsProducto copies the set numeric/reference flags onto the
// request, parsing the decimal fields.
func aplicarFlagsProducto(c *cli.Context, req *dto.GuardarProductoRequest) error {
	if c.IsSet("precio") {
		precio, err := decimal.NewFromString(c.String("precio"))
		if err != nil {
			return cli.Exit("Precio invalido: "+c.String("precio"), 1)
		}
		req.Precio = precio
	}
	if c.IsSet("costo") {
		costo, err := decimal.NewFromString(c.String("costo"))
		if err != nil {
			return cli.Exit("Costo invalido: "+c.String("costo"), 1)
		}
		req.PrecioCosto = &costo
	}
	if c.IsSet("stock") && c.Int("stock") >= 0 {
		req.Stock = c.Int("stock")
	}
	if c.IsSet("stock-minimo") && c.Int("stock-minimo") >= 0 {
		minimo := c.Int("stock-minimo")
		req.StockMinimo = &minimo
	}
	if c.IsSet("categoria") {
		req.Categoria = &dto.RefID{ID: c.Int64("categoria")}
	}
	if c.IsSet("marca") {
		req.Marca = &dto.RefID{ID: c.Int64("marca")}
	}
	return nil
}

// resolverAltasRapidas handles the quick-create sentinels: it creates the
// category and/or brand inline and selects the refreshed entity on the
// request. A failure leaves the request's prior selection untouched.
func (a *app) resolverAltasRapidas(c *cli.Context, req *dto.GuardarProductoRequest) error {
	if nombre := c.String("nueva-categoria"); nombre != "" {
		cat, err := a.store.AltaRapidaCategoria(c.Context, nombre)
		if err != nil {
			return err
		}
		req.Categoria = &dto.RefID{ID: cat.ID}
		exito("Categoria '" + cat.Nombre + "' creada y seleccionada")
	}
	if nombre := c.String("nueva-marca"); nombre != "" {
		var categoriaID int64
		if req.Categoria != nil {
			categoriaID = req.Categoria.ID
		}
		marca, err := a.store.AltaRapidaMarca(c.Context, nombre, categoriaID)
		if err != nil {
			return err
		}
		req.Marca = &dto.RefID{ID: marca.ID}
		exito("Marca '" + marca.Nombre + "' creada y seleccionada")
	}
	return nil
}

func (a *app) productosEliminar() *cli.Command {
	return &cli.Command{
		Name:  "eliminar",
		Usage: "Elimina un producto",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "ID del producto", Required: true},
		},
		Action: func(c *cli.Context) error {
			if err := a.store.EliminarProducto(c.Context, c.Int64("id")); err != nil {
				return err
			}
			exito("Producto eliminado")
			return nil
		},
	}
}

func (a *app) productosVender() *cli.Command {
	return &cli.Command{
		Name:  "vender",
		Usage: "Registra una venta descontando stock",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "ID del producto", Required: true},
			&cli.IntFlag{Name: "cantidad", Usage: "Unidades a vender", Value: 1},
		},
		Action: func(c *cli.Context) error {
			if err := a.store.Vender(c.Context, c.Int64("id"), c.Int("cantidad")); err != nil {
				return err
			}
			exito(fmt.Sprintf("Venta registrada (%d unidad/es)", c.Int("cantidad")))
			if p, ok := a.store.ProductoPorID(c.Int64("id")); ok {
				fmt.Printf("Stock actual de %s: %d\n", p.Nombre, p.Stock)
			}
			return nil
		},
	}
}
