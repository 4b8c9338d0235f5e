package model

import (
	"time"
)

// MerchantModel is the GORM-specific struct for the 'merchants' table.
type MerchantModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement:false"`
	Name             string `gorm:"type:varchar(255);not null"`
	BusinessCategory string `gorm:"type:varchar(128);not null;default:''"`
	PhoneNumber      string `gorm:"type:varchar(32);not null;default:''"`
	Email            string `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Pincodes []MerchantPincodeModel `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// MerchantPincodeModel is one serviced pincode of a merchant. ID preserves
// the order pincodes were added in.
type MerchantPincodeModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	MerchantID int64  `gorm:"not null;uniqueIndex:idx_merchant_pincode"`
	Pincode    string `gorm:"type:varchar(16);not null;uniqueIndex:idx_merchant_pincode;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantPincodeModel) TableName() string {
	return "merchant_pincodes"
}
