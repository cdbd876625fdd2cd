package main

import (
	"github.com/urfave/cli/v2"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/report"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/store"
)

func (a *app) reporteCommand() *cli.Command {
	return &cli.Command{
		Name:   "reporte",
		Usage:  "Genera el reporte de inventario en PDF",
		Before: a.requireAuth,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "salida", Usage: "Directorio de salida (por defecto PDF_STORAGE_PATH)"},
			&cli.StringFlag{Name: "buscar", Usage: "Limita el reporte al subconjunto filtrado"},
		},
		Action: func(c *cli.Context) error {
			if err := a.store.FetchAll(c.Context); err != nil {
				return err
			}
			productos := store.FiltrarProductos(a.store.Snapshot().Productos, c.String("buscar"))

			salida := c.String("salida")
			if salida == "" {
				salida = a.cfg.PDFStoragePath
			}

			path, err := report.GenerarReporteInventario(productos, salida)
			if err != nil {
				return err
			}
			exito("Reporte generado: " + path)
			return nil
		},
	}
}
