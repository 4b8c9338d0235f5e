package usecase

import (
	"context"
	"io"

	"serviceability/internal/domain/entity"
)

// OnboardingKind selects the shape of an onboarding request.
type OnboardingKind string

const (
	OnboardingSingle OnboardingKind = "single"
	OnboardingBulk   OnboardingKind = "bulk"
	OnboardingFile   OnboardingKind = "file"
)

// MerchantPayload is one merchant as submitted by a client.
type MerchantPayload struct {
	Name             string             `json:"name"`
	BusinessCategory string             `json:"business_category"`
	PhoneNumber      string             `json:"phone_number"`
	Email            string             `json:"email"`
	Pincodes         entity.PincodeList `json:"pincodes"`
}

// Profile returns the descriptive fields of the payload.
func (p MerchantPayload) Profile() entity.MerchantProfile {
	return entity.MerchantProfile{
		Name:             p.Name,
		BusinessCategory: p.BusinessCategory,
		PhoneNumber:      p.PhoneNumber,
		Email:            p.Email,
	}
}

// OnboardingRequest is a tagged onboarding input. Exactly one of the payload
// fields is read, according to Kind.
type OnboardingRequest struct {
	Kind      OnboardingKind
	Merchant  *MerchantPayload  // OnboardingSingle
	Merchants []MerchantPayload // OnboardingBulk
	File      io.Reader         // OnboardingFile, CSV text
	FileName  string            // OnboardingFile, for logs only
}

// SingleOnboarding builds a request for one merchant.
func SingleOnboarding(payload MerchantPayload) OnboardingRequest {
	return OnboardingRequest{Kind: OnboardingSingle, Merchant: &payload}
}

// BulkOnboarding builds a request for an ordered list of merchants.
func BulkOnboarding(payloads []MerchantPayload) OnboardingRequest {
	return OnboardingRequest{Kind: OnboardingBulk, Merchants: payloads}
}

// FileOnboarding builds a request for a CSV document.
func FileOnboarding(name string, file io.Reader) OnboardingRequest {
	return OnboardingRequest{Kind: OnboardingFile, File: file, FileName: name}
}

// RecordStatus is the outcome of one onboarding record.
type RecordStatus string

const (
	RecordSucceeded RecordStatus = "succeeded"
	RecordFailed    RecordStatus = "failed"
)

// RecordError describes why a record failed.
type RecordError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecordOutcome is the result of one record, reported at the record's input position.
type RecordOutcome struct {
	Index            int                `json:"index"`          // Zero-based position in the input
	Line             int                `json:"line,omitempty"` // CSV line, file imports only
	Status           RecordStatus       `json:"status"`
	MerchantID       *entity.MerchantID `json:"merchant_id,omitempty"`
	RejectedPincodes []string           `json:"rejected_pincodes,omitempty"`
	Error            *RecordError       `json:"error,omitempty"`
}

// OnboardingReport summarises an onboarding request.
type OnboardingReport struct {
	Kind        OnboardingKind      `json:"kind"`
	Total       int                 `json:"total"`
	Succeeded   int                 `json:"succeeded"`
	Failed      int                 `json:"failed"`
	MerchantIDs []entity.MerchantID `json:"merchant_ids"`
	Records     []RecordOutcome     `json:"records"`
}

// IngestionUsecase defines the interface for onboarding merchants
type IngestionUsecase interface {
	// Onboard applies every record of the request. A single-merchant request
	// returns its failure as the error; bulk requests report failures per
	// record and only fail as a whole when the input cannot be read.
	Onboard(ctx context.Context, request OnboardingRequest) (*OnboardingReport, error)
}
