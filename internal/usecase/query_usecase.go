package usecase

import (
	"context"

	"serviceability/internal/domain/entity"
)

// ServiceableMerchant is one merchant in a resolved serviceability answer.
// Tombstone is set for a merchant that was deleted while the query ran; only
// its id is known then.
type ServiceableMerchant struct {
	ID        entity.MerchantID `json:"id"`
	Name      string            `json:"name,omitempty"`
	Tombstone bool              `json:"tombstone,omitempty"`
}

// QueryUsecase defines the read side of the directory
type QueryUsecase interface {
	// Query returns, per distinct pincode, the ids of the merchants servicing it
	Query(ctx context.Context, pincodes []string) (map[string][]entity.MerchantID, error)

	// ResolveServiceability returns, per distinct pincode, the merchants servicing it with their names
	ResolveServiceability(ctx context.Context, pincodes []string) (map[string][]ServiceableMerchant, error)

	// Detail returns the full record of one merchant
	Detail(ctx context.Context, id entity.MerchantID) (*entity.Merchant, error)
}
