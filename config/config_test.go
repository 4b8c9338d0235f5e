package config

import (
	"testing"
	"time"

	"serviceability/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	t.Setenv("SERVICEABILITY_WRITETIMEOUT", "750ms")
	t.Setenv("INGESTION_WORKERS", "3")
	t.Setenv("STORAGE_BACKEND", "postgres")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Serviceability.WriteTimeout)
	assert.Equal(t, 3, cfg.Ingestion.Workers)
	assert.Equal(t, 10000, cfg.Ingestion.MaxRecords)
	assert.Equal(t, constants.StorageBackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "^[1-9][0-9]{5}$", cfg.Serviceability.PincodePattern)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, constants.StorageBackendMemory, cfg.Storage.Backend)
	assert.Equal(t, defaultWriteTimeout, cfg.Serviceability.WriteTimeout)
	assert.Equal(t, defaultIngestionWorkers, cfg.Ingestion.Workers)
	assert.Equal(t, defaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.True(t, cfg.Metrics.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "unknown backend", mutate: func(cfg *Config) { cfg.Storage.Backend = "mysql" }},
		{name: "postgres without section", mutate: func(cfg *Config) { cfg.Storage.Backend = constants.StorageBackendPostgres }},
		{name: "redis without url", mutate: func(cfg *Config) { cfg.Redis.Enabled = true }},
		{name: "unknown pubsub provider", mutate: func(cfg *Config) { cfg.PubSub.Provider = "kafka" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			require.Error(t, cfg.Validate())
		})
	}
}
