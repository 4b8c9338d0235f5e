package impl

import (
	"io"
	"log/slog"
	"testing"

	"serviceability/config"
	"serviceability/internal/domain/entity"
	"serviceability/internal/infra/metrics"
	"serviceability/internal/serviceability"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// newTestRegistry returns an in-memory registry with the default pincode pattern.
func newTestRegistry(t *testing.T) *serviceability.Registry {
	t.Helper()

	validator, err := serviceability.NewValidator("")
	require.NoError(t, err)

	return serviceability.NewRegistry(validator, nil, nil, newDiscardLogger(), serviceability.Options{})
}

func newIngestionConfig(workers, maxRecords int) *config.Config {
	return &config.Config{
		Ingestion: &config.IngestionConfig{Workers: workers, MaxRecords: maxRecords},
	}
}

func seedMerchant(t *testing.T, registry *serviceability.Registry, name string, pincodes ...string) *entity.Merchant {
	t.Helper()

	result, err := registry.Create(t.Context(), serviceability.NewMerchant{
		Profile:  entity.MerchantProfile{Name: name, BusinessCategory: "grocery"},
		Pincodes: pincodes,
	})
	require.NoError(t, err)

	return result.Merchant
}

func strPtr(s string) *string {
	return &s
}
