package redis

import (
	"context"
	"log/slog"

	"serviceability/config"
	"serviceability/internal/domain/lifecycle"
	"serviceability/internal/domain/repository"
	"serviceability/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds a pooled client from the redis section.
func NewClient(cfg *config.RedisConfig) (*goredis.Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis url is empty")
	}

	opt, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opt.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.MaxRetries != 0 {
		opt.MaxRetries = cfg.MaxRetries
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}

	return goredis.NewClient(opt), nil
}

// NewServiceabilityMirrorFromConfig returns nil when redis is disabled, in
// which case the registry keeps the pincode index in process only.
func NewServiceabilityMirrorFromConfig(params Params) (repository.ServiceabilityMirror, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, serviceability mirror off")

		return nil, nil
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis serviceability mirror connected",
				slog.String("key_prefix", cfg.KeyPrefix),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewServiceabilityMirror(client, cfg.KeyPrefix), nil
}

// Module provides the Redis FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewServiceabilityMirrorFromConfig),
)
