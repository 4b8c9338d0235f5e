// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/domain/repository"
	"serviceability/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// CreateMerchant persists a new merchant together with its pincodes.
func (repo *merchantRepository) CreateMerchant(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Omit("Pincodes").Create(merchantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrMerchantIDConflict, "merchant %d", merchant.ID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	if len(merchant.Pincodes) == 0 {
		return nil
	}

	rows := pincodeRows(merchant.ID, merchant.Pincodes, merchant.CreatedAt)
	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant pincodes")
	}

	return nil
}

// UpdateMerchantProfile overwrites the descriptive columns of a merchant.
func (repo *merchantRepository) UpdateMerchantProfile(ctx context.Context, merchant *entity.Merchant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", int64(merchant.ID)).
		Updates(map[string]any{
			"name":              merchant.Name,
			"business_category": merchant.BusinessCategory,
			"phone_number":      merchant.PhoneNumber,
			"email":             merchant.Email,
			"updated_at":        merchant.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update merchant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// AddPincodes inserts serviced pincodes, skipping the ones already stored.
func (repo *merchantRepository) AddPincodes(ctx context.Context, id entity.MerchantID, pincodes []string) error {
	if len(pincodes) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := pincodeRows(id, pincodes, now)
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMerchantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add merchant pincodes")
	}

	return repo.touch(ctx, id, now)
}

// RemovePincodes deletes serviced pincodes. Pincodes not stored are ignored.
func (repo *merchantRepository) RemovePincodes(ctx context.Context, id entity.MerchantID, pincodes []string) error {
	if len(pincodes) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ? AND pincode IN ?", int64(id), pincodes).
		Delete(&model.MerchantPincodeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove merchant pincodes")
	}

	return repo.touch(ctx, id, time.Now().UTC())
}

func (repo *merchantRepository) touch(ctx context.Context, id entity.MerchantID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", int64(id)).
		Update("updated_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch merchant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// DeleteMerchant removes a merchant and its pincodes.
func (repo *merchantRepository) DeleteMerchant(ctx context.Context, id entity.MerchantID) error {
	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", int64(id)).
		Delete(&model.MerchantPincodeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete merchant pincodes")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", int64(id)).
		Delete(&model.MerchantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete merchant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// ListMerchants loads every merchant with its pincodes in insertion order.
func (repo *merchantRepository) ListMerchants(ctx context.Context) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Preload("Pincodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants, nil
}

// MaxMerchantID returns the largest stored id, or 0 for an empty table.
func (repo *merchantRepository) MaxMerchantID(ctx context.Context) (entity.MerchantID, error) {
	var maxID int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read max merchant id")
	}

	return entity.MerchantID(maxID), nil
}

func pincodeRows(id entity.MerchantID, pincodes []string, at time.Time) []model.MerchantPincodeModel {
	rows := make([]model.MerchantPincodeModel, 0, len(pincodes))
	for _, pincode := range pincodes {
		rows = append(rows, model.MerchantPincodeModel{
			MerchantID: int64(id),
			Pincode:    pincode,
			CreatedAt:  at,
		})
	}

	return rows
}

func fromMerchantDomain(merchant *entity.Merchant) *model.MerchantModel {
	return &model.MerchantModel{
		ID:               int64(merchant.ID),
		Name:             merchant.Name,
		BusinessCategory: merchant.BusinessCategory,
		PhoneNumber:      merchant.PhoneNumber,
		Email:            merchant.Email,
		CreatedAt:        merchant.CreatedAt,
		UpdatedAt:        merchant.UpdatedAt,
	}
}

func toMerchantDomain(merchantM *model.MerchantModel) *entity.Merchant {
	pincodes := make([]string, 0, len(merchantM.Pincodes))
	for _, row := range merchantM.Pincodes {
		pincodes = append(pincodes, row.Pincode)
	}

	return &entity.Merchant{
		ID:               entity.MerchantID(merchantM.ID),
		Name:             merchantM.Name,
		BusinessCategory: merchantM.BusinessCategory,
		PhoneNumber:      merchantM.PhoneNumber,
		Email:            merchantM.Email,
		Pincodes:         pincodes,
		CreatedAt:        merchantM.CreatedAt,
		UpdatedAt:        merchantM.UpdatedAt,
	}
}
