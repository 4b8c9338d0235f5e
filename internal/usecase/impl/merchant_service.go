// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "serviceability/internal/delivery/context"
	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/infra/metrics"
	"serviceability/internal/serviceability"
	"serviceability/internal/usecase"
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	registry *serviceability.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(
	registry *serviceability.Registry,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) usecase.MerchantUsecase {
	return &merchantService{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *merchantService) observe(ctx context.Context, operation string, id entity.MerchantID, err error) {
	srv.metrics.Mutations.WithLabelValues(operation, metrics.Outcome(err)).Inc()
	if err == nil {
		srv.log(ctx).Info("Merchant mutated", slog.String("operation", operation), slog.String("merchant_id", id.String()))

		return
	}

	level := slog.LevelWarn
	if domainerrors.IsRetryable(err) {
		level = slog.LevelError
	}
	srv.log(ctx).Log(ctx, level, "Merchant mutation failed",
		slog.String("operation", operation),
		slog.String("merchant_id", id.String()),
		slog.Any("error", err),
	)
}

// ListMerchants returns the summaries of all merchants.
func (srv *merchantService) ListMerchants(ctx context.Context) ([]entity.MerchantSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.Canceled(err)
	}

	return srv.registry.List(), nil
}

// UpdateMerchant merges a partial profile into a merchant.
func (srv *merchantService) UpdateMerchant(
	ctx context.Context,
	id entity.MerchantID,
	patch *entity.MerchantPatch,
) (*entity.Merchant, error) {
	if patch == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("update payload is required")
	}

	merchant, err := srv.registry.Update(ctx, id, *patch)
	srv.observe(ctx, "update", id, err)
	if err != nil {
		return nil, err
	}

	return merchant, nil
}

// DeleteMerchant removes a merchant and its index entries.
func (srv *merchantService) DeleteMerchant(ctx context.Context, id entity.MerchantID) error {
	err := srv.registry.Delete(ctx, id)
	srv.observe(ctx, "delete", id, err)

	return err
}

// AddPincodes adds serviced pincodes to a merchant.
func (srv *merchantService) AddPincodes(
	ctx context.Context,
	id entity.MerchantID,
	pincodes []string,
) (*usecase.PincodeChangeOutput, error) {
	if len(pincodes) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pincodes is required")
	}

	change, err := srv.registry.AddPincodes(ctx, id, pincodes)
	srv.observe(ctx, "add_pincodes", id, err)
	if err != nil {
		return nil, err
	}

	return toPincodeChangeOutput(change), nil
}

// RemovePincodes removes serviced pincodes from a merchant.
func (srv *merchantService) RemovePincodes(
	ctx context.Context,
	id entity.MerchantID,
	pincodes []string,
) (*usecase.PincodeChangeOutput, error) {
	if len(pincodes) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pincodes is required")
	}

	change, err := srv.registry.RemovePincodes(ctx, id, pincodes)
	srv.observe(ctx, "remove_pincodes", id, err)
	if err != nil {
		return nil, err
	}

	return toPincodeChangeOutput(change), nil
}

func toPincodeChangeOutput(change *serviceability.PincodeChange) *usecase.PincodeChangeOutput {
	return &usecase.PincodeChangeOutput{
		Merchant: change.Merchant,
		Applied:  change.Applied,
		Rejected: change.Rejected,
	}
}
