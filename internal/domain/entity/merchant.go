// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"
)

// MerchantID is the server-assigned identifier of a merchant.
// IDs are assigned in increasing order and never reused while the process lives.
type MerchantID int64

// String renders the id the way it travels in URLs and events.
func (id MerchantID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseMerchantID parses the decimal form produced by String.
func ParseMerchantID(raw string) (MerchantID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return MerchantID(value), nil
}

// Merchant is a business that services a set of pincodes.
type Merchant struct {
	ID               MerchantID `json:"id"`
	Name             string     `json:"name"`
	BusinessCategory string     `json:"business_category"`
	PhoneNumber      string     `json:"phone_number"`
	Email            string     `json:"email"`
	Pincodes         []string   `json:"pincodes"` // Deduplicated; kept in first-insertion order.
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Clone returns a deep copy so callers never share the pincode slice with the store.
func (m *Merchant) Clone() *Merchant {
	if m == nil {
		return nil
	}

	cloned := *m
	cloned.Pincodes = append([]string{}, m.Pincodes...)

	return &cloned
}

// Summary returns the id+name projection used by listings.
func (m *Merchant) Summary() MerchantSummary {
	return MerchantSummary{ID: m.ID, Name: m.Name}
}

// MerchantSummary is the listing projection of a merchant.
type MerchantSummary struct {
	ID   MerchantID `json:"id"`
	Name string     `json:"name"`
}

// MerchantProfile carries the descriptive fields of a merchant, without identity or pincodes.
type MerchantProfile struct {
	Name             string `json:"name" validate:"required,notblank,max=255"`
	BusinessCategory string `json:"business_category" validate:"max=128"`
	PhoneNumber      string `json:"phone_number" validate:"max=32"`
	Email            string `json:"email" validate:"omitempty,email,max=255"`
}

// MerchantPatch is a partial profile update; nil fields keep their prior value.
type MerchantPatch struct {
	Name             *string `json:"name,omitempty"`
	BusinessCategory *string `json:"business_category,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Email            *string `json:"email,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p MerchantPatch) IsEmpty() bool {
	return p.Name == nil && p.BusinessCategory == nil && p.PhoneNumber == nil && p.Email == nil
}

// ApplyTo merges the patch into a profile.
func (p MerchantPatch) ApplyTo(profile MerchantProfile) MerchantProfile {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.BusinessCategory != nil {
		profile.BusinessCategory = *p.BusinessCategory
	}
	if p.PhoneNumber != nil {
		profile.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}

	return profile
}

// Profile extracts the descriptive fields of m.
func (m *Merchant) Profile() MerchantProfile {
	return MerchantProfile{
		Name:             m.Name,
		BusinessCategory: m.BusinessCategory,
		PhoneNumber:      m.PhoneNumber,
		Email:            m.Email,
	}
}

// SetProfile overwrites the descriptive fields of m.
func (m *Merchant) SetProfile(profile MerchantProfile) {
	m.Name = profile.Name
	m.BusinessCategory = profile.BusinessCategory
	m.PhoneNumber = profile.PhoneNumber
	m.Email = profile.Email
}
