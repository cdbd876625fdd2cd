package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/api"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/config"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/ledger"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/session"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/store"
)

// app bundles the shared client state: one session, one API client, one
// master-data store. Commands capture it via closures.
type app struct {
	cfg     *config.Config
	session *session.Session
	api     *api.Client
	store   *store.Store
	ledger  *ledger.Vista
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error al cargar la configuracion:", err)
		os.Exit(1)
	}

	// Pretty console output in development, JSON otherwise
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("LOG_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ses := session.New(cfg.APIBaseURL, cfg.TokenPath, cfg.HTTPTimeout())
	apiClient := api.New(ses.BaseURL(), ses.Client())

	a := &app{
		cfg:     cfg,
		session: ses,
		api:     apiClient,
		store:   store.New(apiClient),
		ledger:  ledger.NewVista(apiClient),
	}

	cliApp := &cli.App{
		Name:  "inventario",
		Usage: "Cliente de gestion de inventario: productos, ventas y datos maestros",
		Commands: []*cli.Command{
			a.loginCommand(),
			a.logoutCommand(),
			a.productosCommand(),
			a.categoriasCommand(),
			a.marcasCommand(),
			a.ventasCommand(),
			a.dashboardCommand(),
			a.reporteCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fallo(err)
		os.Exit(1)
	}
}

// requireAuth gates every command except login behind the session state.
func (a *app) requireAuth(*cli.Context) error {
	if !a.session.IsAuthenticated() {
		return cli.Exit("No hay sesion activa. Ejecute 'inventario login' primero.", 1)
	}
	return nil
}
