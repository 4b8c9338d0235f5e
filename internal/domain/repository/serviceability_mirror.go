package repository

import (
	"context"

	"serviceability/internal/domain/entity"
)

// ServiceabilityMirror maintains an external copy of the pincode -> merchant
// reverse index (for example Redis sets) for readers outside this process.
type ServiceabilityMirror interface {
	// Link adds id to the bucket of every pincode.
	Link(ctx context.Context, id entity.MerchantID, pincodes []string) error

	// Unlink removes id from the bucket of every pincode.
	Unlink(ctx context.Context, id entity.MerchantID, pincodes []string) error
}
