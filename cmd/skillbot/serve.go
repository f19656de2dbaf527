package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/estlahq/skillbot/internal/config"
	"github.com/estlahq/skillbot/internal/content"
	"github.com/estlahq/skillbot/internal/handlers"
	"github.com/estlahq/skillbot/internal/intent"
	"github.com/estlahq/skillbot/internal/kakao"
	"github.com/estlahq/skillbot/internal/keepalive"
	"github.com/estlahq/skillbot/internal/logger"
	"github.com/estlahq/skillbot/internal/server"
)

func runServe() {
	fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,
			provideStore,
			provideRouter,
			provideBuilder,
			provideKeepAlive,
			provideServerHandler(provideHealthHandler),
			provideServerHandler(provideSkillHandler),
			provideServerHandler(provideEntriesHandler),
			provideServer,
		),
		fx.Invoke(
			startKeepAlive,
			startServer,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With(slog.String("component", "fx"))}
		}),
	).Run()
}

func provideServerHandler(fn any) any {
	return fx.Annotate(
		fn,
		fx.As(new(server.Handler)),
		fx.ResultTags(`group:"server_handlers"`),
	)
}

func provideConfig() (config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	// The hosting platform exposes the deployment URL via environment;
	// it wins over the config file.
	if url := externalURLFromEnv(); url != "" {
		cfg.Server.ExternalBaseURL = url
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func externalURLFromEnv() string {
	if url := os.Getenv("EXTERNAL_BASE_URL"); url != "" {
		return url
	}
	return os.Getenv("RENDER_EXTERNAL_URL")
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return logger.L
}

func provideStore(log *slog.Logger, cfg config.Config) (*content.Store, error) {
	store, err := content.Load(log, cfg.Content.Dir, cfg.Server.StaticBaseURL())
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return store, nil
}

func provideRouter(log *slog.Logger, store *content.Store) *intent.Router {
	return intent.NewRouter(log, store)
}

func provideBuilder(log *slog.Logger) *kakao.Builder {
	return kakao.NewBuilder(log)
}

func provideKeepAlive(log *slog.Logger, cfg config.Config) (*keepalive.Scheduler, error) {
	interval, err := cfg.KeepAlive.PingInterval()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.KeepAlive.PingTimeout()
	if err != nil {
		return nil, err
	}
	return keepalive.New(log, cfg.Server.ExternalBaseURL, interval, timeout), nil
}

func provideHealthHandler(log *slog.Logger) *handlers.HealthHandler {
	return handlers.NewHealthHandler(log)
}

func provideSkillHandler(log *slog.Logger, router *intent.Router, builder *kakao.Builder) *handlers.SkillHandler {
	return handlers.NewSkillHandler(log, router, builder)
}

func provideEntriesHandler(log *slog.Logger, store *content.Store, cfg config.Config) *handlers.EntriesHandler {
	return handlers.NewEntriesHandler(log, store, cfg.Content.Dir)
}

type serverParams struct {
	fx.In
	Logger   *slog.Logger
	Config   config.Config
	Handlers []server.Handler `group:"server_handlers"`
}

func provideServer(params serverParams) *server.Server {
	return server.New(params.Logger, params.Config.Server.Addr, params.Handlers)
}

func startKeepAlive(lc fx.Lifecycle, scheduler *keepalive.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error { return scheduler.Start() },
		OnStop:  func(ctx context.Context) error { return scheduler.Stop(ctx) },
	})
}

func startServer(lc fx.Lifecycle, log *slog.Logger, srv *server.Server, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Stop(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stop: %w", err)
			}
			return nil
		},
	})
}
