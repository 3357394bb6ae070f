package app

import (
	"context"
	"errors"
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dimasmith/printtables/internal/config"
	"github.com/dimasmith/printtables/internal/transport/http/health"
	"github.com/dimasmith/printtables/internal/transport/http/middleware"
	"github.com/dimasmith/printtables/platform/closer"
	"github.com/dimasmith/printtables/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	m := a.di.Migrator(ctx)
	if m == nil {
		logger.Info(ctx, "in-memory storage, no migrations to apply")
		return nil
	}

	applied, err := m.Up(ctx)
	if err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	logger.Info(ctx, "migrations applied",
		logger.String("driver", config.C().Storage.Driver()),
		logger.Any("versions", applied),
	)
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimid.RequestID,
		chimid.RealIP,
		middleware.Logging,
		chimid.Recoverer,
	)
	if cfg.Server.MetricsEnabled() {
		r.Use(middleware.Metrics)
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/health", health.HealthCheck)
	a.di.Handler(ctx).Routes(r)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("HTTP server", func(ctx context.Context) error {
		return a.server.Shutdown(ctx)
	})
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 printtables server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("storage", config.C().Storage.Driver()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	// Shutdown also stops ListenAndServe above; CloseAll runs once.
	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(ctx, "shutdown requested")
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
	_ = logger.Sync()
}
