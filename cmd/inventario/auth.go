package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func (a *app) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Inicia sesion contra el backend y guarda el token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "usuario", Aliases: []string{"u"}, Usage: "Nombre de usuario", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Contrasena (se pide por stdin si falta)"},
		},
		Action: func(c *cli.Context) error {
			password := c.String("password")
			if password == "" {
				fmt.Print("Contrasena: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			ok, err := a.session.Login(c.Context, c.String("usuario"), password)
			if err != nil {
				return err
			}
			if !ok {
				return cli.Exit("Credenciales invalidas", 1)
			}
			exito("Sesion iniciada")
			return nil
		},
	}
}

func (a *app) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Cierra la sesion y elimina el token guardado",
		Action: func(c *cli.Context) error {
			if err := a.session.Logout(); err != nil {
				return err
			}
			exito("Sesion cerrada")
			return nil
		},
	}
}
