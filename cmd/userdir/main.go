package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userdir/modules/directory"
	"github.com/dmitrymomot/userdir/pkg/clientip"
	"github.com/dmitrymomot/userdir/pkg/config"
	"github.com/dmitrymomot/userdir/pkg/httpserver"
	"github.com/dmitrymomot/userdir/pkg/logger"
	"github.com/dmitrymomot/userdir/pkg/randomuser"
	"github.com/dmitrymomot/userdir/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithFile(cfg.LogFile),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client := randomuser.New(
		randomuser.WithBaseURL(cfg.RandomUser.URL),
		randomuser.WithResults(cfg.RandomUser.Results),
		randomuser.WithNationalities(cfg.RandomUser.Nationalities...),
	)

	screen := directory.NewScreen()
	ctl := directory.NewController(directory.FromRandomUser(client), screen,
		directory.WithLogger(log),
		directory.WithSearchDebounce(cfg.Directory.SearchDebounce),
	)
	svc := directory.NewService(ctl, screen,
		directory.WithServiceLogger(log),
		directory.WithNationalities(client.Nationalities()),
		directory.WithTitle(cfg.Directory.Title),
		directory.WithQRSize(cfg.Directory.QRSize),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(*slog.Logger) {
			ctl.Start(ctx)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			cancel()
			ctl.Close()
			screen.Close()
			l.Info("directory stopped")
		}),
	)

	return srv.Run(ctx, newRouter(log, ctl, svc))
}

func newRouter(log *slog.Logger, ctl *directory.Controller, svc *directory.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, ctl.Ready))
	r.Mount("/", svc.Handle())

	return r
}
