package main

import (
	"context"
	"log/slog"
	"os"

	"serviceability/config"
	"serviceability/internal/delivery"
	"serviceability/internal/delivery/api"
	"serviceability/internal/delivery/api/router/handler"
	"serviceability/internal/domain/constants"
	"serviceability/internal/domain/lifecycle"
	"serviceability/internal/domain/repository"
	logs "serviceability/internal/infra/log"
	"serviceability/internal/infra/metrics"
	"serviceability/internal/infra/persistence/postgres"
	"serviceability/internal/infra/persistence/redis"
	"serviceability/internal/infra/pubsub"
	"serviceability/internal/serviceability"
	"serviceability/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectCore(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			hydrateRegistry,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newMetrics,
		),
		pubsub.Module,
		redis.Module,
	)
}

func newMetrics() (*prometheus.Registry, *metrics.Metrics) {
	registry := metrics.NewRegistry()

	return registry, metrics.New(registry)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newTransactionManager,
		),
	)
}

// newTransactionManager returns nil for the memory backend, which keeps the
// registry purely in process.
func newTransactionManager(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.TransactionManager, error) {
	if cfg.Storage.Backend != constants.StorageBackendPostgres {
		logger.Info("Using in-memory storage backend")

		return nil, nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	return postgres.NewTransactionManager(db), nil
}

func injectCore() fx.Option {
	return fx.Options(
		fx.Provide(
			newRegistry,
		),
	)
}

func newRegistry(
	cfg *config.Config,
	txManager repository.TransactionManager,
	mirror repository.ServiceabilityMirror,
	logger *slog.Logger,
) (*serviceability.Registry, error) {
	validator, err := serviceability.NewValidator(cfg.Serviceability.PincodePattern)
	if err != nil {
		return nil, err
	}

	return serviceability.NewRegistry(validator, txManager, mirror, logger, serviceability.Options{
		WriteTimeout: cfg.Serviceability.WriteTimeout,
	}), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMerchantService,
			impl.NewIngestionService,
			impl.NewQueryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMerchantHandler,
			handler.NewOnboardingHandler,
			handler.NewServiceabilityHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// hydrateRegistry loads stored merchants before the server accepts traffic
// and exports the directory size gauges.
func hydrateRegistry(lc fx.Lifecycle, registry *serviceability.Registry, promRegistry *prometheus.Registry) {
	metrics.RegisterDirectoryGauges(promRegistry, registry.Stats)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return registry.Hydrate(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		params.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()

				return nil
			},
		})
	}
}
