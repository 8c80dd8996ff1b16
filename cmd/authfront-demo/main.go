// Command authfront-demo serves the authentication pages against a hosted
// provider using built-in minimal views. Real applications supply their own
// templ components; this binary wires the full stack for local evaluation.
//
// Required environment: AUTH_PROVIDER_URL and AUTH_PROVIDER_KEY. Everything
// else has defaults; see the package Config structs.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/authfront/authfront/modules/authweb"
	"github.com/authfront/authfront/pkg/authguard"
	"github.com/authfront/authfront/pkg/config"
	"github.com/authfront/authfront/pkg/hostedauth"
	"github.com/authfront/authfront/pkg/httpserver"
	"github.com/authfront/authfront/pkg/logger"
	"github.com/authfront/authfront/pkg/requestid"
	"github.com/authfront/authfront/pkg/sessionstate"
)

type appConfig struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`

	Server   httpserver.Config
	Provider hostedauth.Config
	Web      authweb.Config
	Gate     authguard.GateConfig
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(slog.String("app", "authfront-demo")),
	)

	client := hostedauth.NewGoTrueClient(cfg.Provider, hostedauth.WithGoTrueLogger(log))
	store := sessionstate.New(client, sessionstate.WithLogger(log))
	defer store.Close()

	svc := authweb.NewService(cfg.Web, client, store, demoViews(), authweb.WithLogger(log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(authguard.RequestGate(cfg.Gate, svc.HasSession))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, client.Health))
	r.Get(cfg.Web.LandingPath, dashboardHandler(store, cfg.Web))
	r.Mount("/", authweb.Router(authweb.RouterOptions{Service: svc}))

	srv := httpserver.New(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
