package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/metrics"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/store"
)

func (a *app) dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:   "dashboard",
		Usage:  "Metricas derivadas del inventario",
		Before: a.requireAuth,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "buscar", Usage: "Calcula sobre el subconjunto filtrado"},
			&cli.BoolFlag{Name: "watch", Usage: "Refresca periodicamente"},
			&cli.DurationFlag{Name: "intervalo", Usage: "Intervalo de refresco con --watch", Value: 30 * time.Second},
		},
		Action: func(c *cli.Context) error {
			if err := a.mostrarDashboard(c); err != nil {
				return err
			}
			if !c.Bool("watch") {
				return nil
			}

			// Periodic refetch, the terminal analogue of refreshing on
			// window-focus regain.
			ticker := time.NewTicker(c.Duration("intervalo"))
			defer ticker.Stop()
			for {
				select {
				case <-c.Context.Done():
					return nil
				case <-ticker.C:
					fmt.Println()
					if err := a.mostrarDashboard(c); err != nil {
						// Stale data stays on screen; the error is a notice,
						// not a reason to stop watching.
						fallo(err)
					}
				}
			}
		},
	}
}

func (a *app) mostrarDashboard(c *cli.Context) error {
	if err := a.store.FetchAll(c.Context); err != nil {
		return err
	}
	snap := a.store.Snapshot()
	productos := store.FiltrarProductos(snap.Productos, c.String("buscar"))
	renderDashboard(metrics.Calcular(productos), len(productos))

	// Per-product detail for anything at or under its threshold
	for i := range productos {
		p := &productos[i]
		if metrics.EsCritico(p) {
			fmt.Printf("  ⚠ %s — stock %d, %s\n", p.Nombre, p.Stock, renderEstadoStock(p))
		}
	}
	return nil
}
