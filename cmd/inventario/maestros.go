package main

import (
	"github.com/urfave/cli/v2"
)

// Master-data administration: categories and brands.

func (a *app) categoriasCommand() *cli.Command {
	return &cli.Command{
		Name:   "categorias",
		Usage:  "Administra las categorias",
		Before: a.requireAuth,
		Subcommands: []*cli.Command{
			{
				Name:  "listar",
				Usage: "Lista las categorias",
				Action: func(c *cli.Context) error {
					if err := a.store.FetchAll(c.Context); err != nil {
						return err
					}
					renderCategorias(a.store.Snapshot().Categorias)
					return nil
				},
			},
			{
				Name:  "crear",
				Usage: "Crea una categoria",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nombre", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.CrearCategoria(c.Context, c.String("nombre")); err != nil {
						return err
					}
					exito("Creado con exito")
					return nil
				},
			},
			{
				Name:  "editar",
				Usage: "Renombra una categoria",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "nombre", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.ActualizarCategoria(c.Context, c.Int64("id"), c.String("nombre")); err != nil {
						return err
					}
					exito("Actualizado correctamente")
					return nil
				},
			},
			{
				Name:  "eliminar",
				Usage: "Elimina una categoria (falla si esta en uso)",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.EliminarCategoria(c.Context, c.Int64("id")); err != nil {
						return err
					}
					exito("Eliminado correctamente")
					return nil
				},
			},
		},
	}
}

func (a *app) marcasCommand() *cli.Command {
	return &cli.Command{
		Name:   "marcas",
		Usage:  "Administra las marcas y sus categorias asociadas",
		Before: a.requireAuth,
		Subcommands: []*cli.Command{
			{
				Name:  "listar",
				Usage: "Lista las marcas",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "categoria",
						Usage: "Limita a las marcas seleccionables para esa categoria",
					},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.FetchAll(c.Context); err != nil {
						return err
					}
					renderMarcas(a.store.MarcasParaCategoria(c.Int64("categoria")))
					return nil
				},
			},
			{
				Name:  "crear",
				Usage: "Crea una marca",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nombre", Required: true},
					&cli.Int64SliceFlag{Name: "categorias", Usage: "IDs de categorias asociadas"},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.CrearMarca(c.Context, c.String("nombre"), c.Int64Slice("categorias")); err != nil {
						return err
					}
					exito("Marca creada con exito")
					return nil
				},
			},
			{
				Name:  "editar",
				Usage: "Renombra una marca y reemplaza sus asociaciones",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "nombre", Required: true},
					&cli.Int64SliceFlag{Name: "categorias", Usage: "IDs de categorias asociadas"},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.ActualizarMarca(c.Context, c.Int64("id"), c.String("nombre"), c.Int64Slice("categorias")); err != nil {
						return err
					}
					exito("Actualizado correctamente")
					return nil
				},
			},
			{
				Name:  "eliminar",
				Usage: "Elimina una marca",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.store.EliminarMarca(c.Context, c.Int64("id")); err != nil {
						return err
					}
					exito("Eliminado correctamente")
					return nil
				},
			},
		},
	}
}
