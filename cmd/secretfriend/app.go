package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/secretfriend/handler"
	"github.com/dmitrymomot/secretfriend/modules/party"
	"github.com/dmitrymomot/secretfriend/modules/party/views"
	"github.com/dmitrymomot/secretfriend/pkg/cookie"
	"github.com/dmitrymomot/secretfriend/pkg/feedback"
	"github.com/dmitrymomot/secretfriend/pkg/httpserver"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
	"github.com/dmitrymomot/secretfriend/pkg/requestid"
	partysvc "github.com/dmitrymomot/secretfriend/svc/party"
)

// Config is the process configuration, read from the environment.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production test"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"secretfriend" validate:"required"`

	HTTP   httpserver.Config
	Party  partysvc.Config
	Module party.Config
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

// newRouter mounts the party module with its supporting routes.
func newRouter(cfg Config, registry *partysvc.Registry, cookies *cookie.Manager, log *slog.Logger) http.Handler {
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		Inline: func(p handler.ErrorParams) templ.Component {
			return views.Feedback(party.FeedbackParams{Message: feedback.Error(p.Message)})
		},
	})

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, registry.Ping))
	r.Mount("/", party.NewService(cfg.Module, registry, views.Default(), cookies, errorHandler, log).Handle())
	return r
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	cookies, err := cookie.NewFromConfig(cfg.Module.Cookie)
	if err != nil {
		return err
	}
	registry, err := partysvc.NewRegistry(cfg.Party, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithDrainHook(func() {
			if err := registry.Close(); err != nil {
				log.Error("close parties", logger.Error(err))
			}
		}),
	)
	return srv.Run(ctx, newRouter(cfg, registry, cookies, log))
}
