package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/ledger"
)

func (a *app) ventasCommand() *cli.Command {
	return &cli.Command{
		Name:   "ventas",
		Usage:  "Historial de ventas con filtros y orden local",
		Before: a.requireAuth,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "desde", Usage: "Fecha inicial inclusive (AAAA-MM-DD)"},
			&cli.StringFlag{Name: "hasta", Usage: "Fecha final inclusive (AAAA-MM-DD)"},
			&cli.StringFlag{Name: "producto", Usage: "Filtro de texto sobre el nombre del producto"},
			&cli.StringFlag{Name: "rango", Usage: "Preset de fechas: hoy | 7dias | mes"},
			&cli.StringFlag{Name: "orden", Usage: "Columna de orden: fecha | producto | cantidad | monto", Value: "fecha"},
			&cli.BoolFlag{Name: "desc", Usage: "Orden descendente"},
		},
		Action: func(c *cli.Context) error {
			filtro, err := armarFiltro(c)
			if err != nil {
				return err
			}
			orden, err := armarOrden(c)
			if err != nil {
				return err
			}

			if err := a.ledger.Cargar(c.Context); err != nil {
				return err
			}

			visibles := ledger.Filtrar(a.ledger.Ventas(), filtro)
			ledger.Ordenar(visibles, orden)
			renderVentas(visibles, ledger.CalcularTotales(visibles))
			return nil
		},
	}
}

// armarFiltro resolves the preset first, then lets explicit bounds override
// it. A preset only sets the two date fields.
func armarFiltro(c *cli.Context) (ledger.Filtro, error) {
	var filtro ledger.Filtro
	switch c.String("rango") {
	case "":
	case "hoy":
		filtro = ledger.PresetHoy(time.Now())
	case "7dias":
		filtro = ledger.PresetUltimos7Dias(time.Now())
	case "mes":
		filtro = ledger.PresetMesActual(time.Now())
	default:
		return filtro, cli.Exit("Rango desconocido: "+c.String("rango"), 1)
	}

	if s := c.String("desde"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return filtro, cli.Exit("Fecha 'desde' invalida: "+s, 1)
		}
		filtro.Desde = &t
	}
	if s := c.String("hasta"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return filtro, cli.Exit("Fecha 'hasta' invalida: "+s, 1)
		}
		filtro.Hasta = &t
	}
	filtro.Producto = c.String("producto")
	return filtro, nil
}

func armarOrden(c *cli.Context) (ledger.Orden, error) {
	orden := ledger.Orden{Descendente: c.Bool("desc")}
	switch c.String("orden") {
	case "fecha":
		orden.Clave = ledger.PorFecha
	case "producto":
		orden.Clave = ledger.PorProducto
	case "cantidad":
		orden.Clave = ledger.PorCantidad
	case "monto":
		orden.Clave = ledger.PorMonto
	default:
		return orden, cli.Exit("Columna de orden desconocida: "+c.String("orden"), 1)
	}
	return orden, nil
}
