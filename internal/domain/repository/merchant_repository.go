// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"serviceability/internal/domain/entity"
	"serviceability/internal/errors"
)

// Domain-specific errors for merchant persistence.
var (
	// ErrMerchantNotFound is returned when no row exists for a merchant id.
	ErrMerchantNotFound = errors.New("merchant not found")
	// ErrMerchantIDConflict is returned when the assigned id is already taken in the backing store.
	ErrMerchantIDConflict = errors.New("merchant id already exists")
)

// MerchantRepository persists merchant records together with their serviced pincodes.
type MerchantRepository interface {
	// CreateMerchant persists a new merchant and its initial pincode set.
	CreateMerchant(ctx context.Context, merchant *entity.Merchant) error

	// UpdateMerchantProfile overwrites the descriptive fields of an existing merchant.
	UpdateMerchantProfile(ctx context.Context, merchant *entity.Merchant) error

	// AddPincodes records additional serviced pincodes. Already stored pincodes are ignored.
	AddPincodes(ctx context.Context, id entity.MerchantID, pincodes []string) error

	// RemovePincodes deletes serviced pincodes. Missing pincodes are ignored.
	RemovePincodes(ctx context.Context, id entity.MerchantID, pincodes []string) error

	// DeleteMerchant removes a merchant and all of its pincodes.
	DeleteMerchant(ctx context.Context, id entity.MerchantID) error

	// ListMerchants returns every merchant with its pincodes, ordered by id.
	ListMerchants(ctx context.Context) ([]*entity.Merchant, error)

	// MaxMerchantID returns the largest stored id, or 0 when empty.
	MaxMerchantID(ctx context.Context) (entity.MerchantID, error)
}
