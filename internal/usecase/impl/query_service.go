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

// directoryReader is the read side of serviceability.Registry.
type directoryReader interface {
	Query(pincodes []string) map[string][]entity.MerchantID
	Buckets(pincodes []string) map[string][]entity.MerchantID
	Lookup(ids []entity.MerchantID) map[entity.MerchantID]serviceability.Entry
	Get(id entity.MerchantID) (*entity.Merchant, error)
}

// queryService implements the QueryUsecase interface.
type queryService struct {
	directory directoryReader
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewQueryService is the constructor for queryService.
func NewQueryService(
	registry *serviceability.Registry,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) usecase.QueryUsecase {
	return &queryService{
		directory: registry,
		metrics:   metrics,
		logger:    logger,
	}
}

func (srv *queryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Query returns the raw pincode -> merchant id mapping.
func (srv *queryService) Query(ctx context.Context, pincodes []string) (map[string][]entity.MerchantID, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.Canceled(err)
	}

	result := srv.directory.Query(pincodes)
	srv.metrics.Queries.WithLabelValues("raw").Inc()
	srv.metrics.QueryPincodes.Observe(float64(len(result)))

	return result, nil
}

// ResolveServiceability reads the index, then the store, for every pincode.
// A merchant deleted between the two reads is kept as a tombstone; one still
// being created is left out.
func (srv *queryService) ResolveServiceability(
	ctx context.Context,
	pincodes []string,
) (map[string][]usecase.ServiceableMerchant, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.Canceled(err)
	}

	buckets := srv.directory.Buckets(pincodes)

	ids := make([]entity.MerchantID, 0)
	for _, bucket := range buckets {
		ids = append(ids, bucket...)
	}
	entries := srv.directory.Lookup(ids)

	tombstones := 0
	result := make(map[string][]usecase.ServiceableMerchant, len(buckets))
	for pincode, bucket := range buckets {
		merchants := make([]usecase.ServiceableMerchant, 0, len(bucket))
		for _, id := range bucket {
			entry := entries[id]
			switch entry.Presence {
			case serviceability.PresenceLive:
				merchants = append(merchants, usecase.ServiceableMerchant{ID: id, Name: entry.Merchant.Name})
			case serviceability.PresenceGone:
				merchants = append(merchants, usecase.ServiceableMerchant{ID: id, Tombstone: true})
				tombstones++
			case serviceability.PresencePending:
				// Not committed yet.
			}
		}
		result[pincode] = merchants
	}

	srv.metrics.Queries.WithLabelValues("resolved").Inc()
	srv.metrics.QueryPincodes.Observe(float64(len(result)))
	if tombstones > 0 {
		srv.metrics.Tombstones.Add(float64(tombstones))
		srv.log(ctx).Debug("Serviceability resolved with tombstones", slog.Int("tombstones", tombstones))
	}

	return result, nil
}

// Detail returns the full record of one merchant.
func (srv *queryService) Detail(ctx context.Context, id entity.MerchantID) (*entity.Merchant, error) {
	return srv.directory.Get(id)
}
