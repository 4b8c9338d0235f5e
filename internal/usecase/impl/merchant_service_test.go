package impl

import (
	"context"
	"testing"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/errors"
	"serviceability/internal/infra/metrics"
	"serviceability/internal/serviceability"
	"serviceability/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// merchantServiceFixtures holds all test dependencies for merchant service tests.
type merchantServiceFixtures struct {
	service  usecase.MerchantUsecase
	registry *serviceability.Registry
	metrics  *metrics.Metrics
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	registry := newTestRegistry(t)
	m := newTestMetrics()

	return merchantServiceFixtures{
		service:  NewMerchantService(registry, m, newDiscardLogger()),
		registry: registry,
		metrics:  m,
	}
}

func TestMerchantService_ListMerchants(t *testing.T) {
	fx := createTestMerchantService(t)
	first := seedMerchant(t, fx.registry, "First")
	second := seedMerchant(t, fx.registry, "Second")

	summaries, err := fx.service.ListMerchants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.MerchantSummary{
		{ID: first.ID, Name: "First"},
		{ID: second.ID, Name: "Second"},
	}, summaries)
}

func TestMerchantService_ListMerchants_CancelledContext(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.ListMerchants(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domainerrors.ErrRequestCanceled)
}

func TestMerchantService_UpdateMerchant_MergesFields(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods", "110001")

	updated, err := fx.service.UpdateMerchant(context.Background(), seeded.ID, &entity.MerchantPatch{
		Email: strPtr("orders@acme.example"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Foods", updated.Name)
	assert.Equal(t, "orders@acme.example", updated.Email)
	assert.Equal(t, []string{"110001"}, updated.Pincodes)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Mutations.WithLabelValues("update", metrics.OutcomeSuccess)))
}

func TestMerchantService_UpdateMerchant_NilPatch(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods")

	_, err := fx.service.UpdateMerchant(context.Background(), seeded.ID, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMerchantService_UpdateMerchant_ClearingNameFails(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods")

	_, err := fx.service.UpdateMerchant(context.Background(), seeded.ID, &entity.MerchantPatch{Name: strPtr("  ")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Mutations.WithLabelValues("update", metrics.OutcomeFailure)))

	merchant, err := fx.registry.Get(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Foods", merchant.Name)
}

func TestMerchantService_DeleteMerchant(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods", "110001", "110002")

	require.NoError(t, fx.service.DeleteMerchant(context.Background(), seeded.ID))

	assert.Equal(t, map[string][]entity.MerchantID{
		"110001": {},
		"110002": {},
	}, fx.registry.Query([]string{"110001", "110002"}))

	err := fx.service.DeleteMerchant(context.Background(), seeded.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantNotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Mutations.WithLabelValues("delete", metrics.OutcomeFailure)))
}

func TestMerchantService_AddPincodes_ReportsRejectedTokens(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods", "110001")

	output, err := fx.service.AddPincodes(context.Background(), seeded.ID, []string{"110001", "560001", "abc"})
	require.NoError(t, err)

	assert.Equal(t, []string{"560001"}, output.Applied)
	assert.Equal(t, []string{"abc"}, output.Rejected)
	assert.Equal(t, []string{"110001", "560001"}, output.Merchant.Pincodes)
	assert.Equal(t, []entity.MerchantID{seeded.ID}, fx.registry.Query([]string{"560001"})["560001"])
}

func TestMerchantService_AddPincodes_EmptyInput(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods")

	_, err := fx.service.AddPincodes(context.Background(), seeded.ID, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMerchantService_AddPincodes_UnknownMerchant(t *testing.T) {
	fx := createTestMerchantService(t)

	_, err := fx.service.AddPincodes(context.Background(), entity.MerchantID(42), []string{"110001"})
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantNotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Mutations.WithLabelValues("add_pincodes", metrics.OutcomeFailure)))
}

func TestMerchantService_RemovePincodes(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods", "110001", "110002")

	output, err := fx.service.RemovePincodes(context.Background(), seeded.ID, []string{"110002", "400001"})
	require.NoError(t, err)

	assert.Equal(t, []string{"110002"}, output.Applied)
	assert.Empty(t, output.Rejected)
	assert.Equal(t, []string{"110001"}, output.Merchant.Pincodes)
	assert.Empty(t, fx.registry.Query([]string{"110002"})["110002"])
}

func TestMerchantService_RemovePincodes_NotServicedIsNoop(t *testing.T) {
	fx := createTestMerchantService(t)
	seeded := seedMerchant(t, fx.registry, "Acme Foods", "110001")

	output, err := fx.service.RemovePincodes(context.Background(), seeded.ID, []string{"560001"})
	require.NoError(t, err)

	assert.Empty(t, output.Applied)
	assert.Equal(t, []string{"110001"}, output.Merchant.Pincodes)
}
