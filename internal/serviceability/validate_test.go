package serviceability

import (
	"testing"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Pincodes(t *testing.T) {
	validator := newTestValidator(t)

	valid, rejected := validator.Pincodes([]string{"110001", "11A001", "110001", "011000", "5600012", "560001"})

	assert.Equal(t, []string{"110001", "560001"}, valid)
	assert.Equal(t, []string{"11A001", "011000", "5600012"}, rejected)
}

func TestValidator_CustomPattern(t *testing.T) {
	validator, err := NewValidator(`^[0-9]{5}$`)
	require.NoError(t, err)

	assert.True(t, validator.Pincode("02139"))
	assert.False(t, validator.Pincode("110001"))
}

func TestValidator_InvalidPattern(t *testing.T) {
	_, err := NewValidator(`^[0-9`)
	require.Error(t, err)
}

func TestValidator_Profile(t *testing.T) {
	validator := newTestValidator(t)

	tests := []struct {
		name    string
		profile entity.MerchantProfile
		wantErr string
	}{
		{name: "valid", profile: entity.MerchantProfile{Name: "Acme", Email: "ops@acme.test"}},
		{name: "missing name", profile: entity.MerchantProfile{}, wantErr: "name is required"},
		{name: "blank name", profile: entity.MerchantProfile{Name: "   "}, wantErr: "name must not be blank"},
		{name: "bad email", profile: entity.MerchantProfile{Name: "Acme", Email: "not-an-email"}, wantErr: "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Profile(tt.profile)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
