package usecase

import (
	"context"

	"serviceability/internal/domain/entity"
)

// PincodeChangeOutput reports the effect of adding or removing serviced pincodes.
type PincodeChangeOutput struct {
	Merchant *entity.Merchant `json:"merchant"`
	Applied  []string         `json:"applied"`            // Pincodes whose membership changed
	Rejected []string         `json:"rejected,omitempty"` // Malformed tokens that were ignored
}

// MerchantUsecase defines the interface for managing onboarded merchants
type MerchantUsecase interface {
	// ListMerchants returns the summaries of all merchants in onboarding order
	ListMerchants(ctx context.Context) ([]entity.MerchantSummary, error)

	// UpdateMerchant merges the non-nil fields of patch into the merchant's profile
	UpdateMerchant(ctx context.Context, id entity.MerchantID, patch *entity.MerchantPatch) (*entity.Merchant, error)

	// DeleteMerchant removes a merchant and every index entry pointing at it
	DeleteMerchant(ctx context.Context, id entity.MerchantID) error

	// AddPincodes adds serviced pincodes to a merchant
	AddPincodes(ctx context.Context, id entity.MerchantID, pincodes []string) (*PincodeChangeOutput, error)

	// RemovePincodes removes serviced pincodes from a merchant
	RemovePincodes(ctx context.Context, id entity.MerchantID, pincodes []string) (*PincodeChangeOutput, error)
}
