package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"modgate/internal/domain/license"
	"modgate/internal/infrastructure/persistence/mappers"
	"modgate/internal/infrastructure/persistence/models"
	"modgate/internal/shared/db"
	"modgate/internal/shared/logger"
)

type licenseKeyRepository struct {
	db     *gorm.DB
	mapper *mappers.LicenseKeyMapper
	logger logger.Interface
}

// NewLicenseKeyRepository creates a GORM-backed license key repository.
func NewLicenseKeyRepository(database *gorm.DB) license.KeyRepository {
	return &licenseKeyRepository{
		db:     database,
		mapper: mappers.NewLicenseKeyMapper(),
		logger: logger.NewLogger().With("component", "repository.license_key"),
	}
}

func (r *licenseKeyRepository) Create(ctx context.Context, key *license.Key) error {
	model, err := r.mapper.ToModel(key)
	if err != nil {
		return fmt.Errorf("failed to map key to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create license key", "key_id", key.KeyID(), "error", err)
		return fmt.Errorf("failed to create license key: %w", err)
	}

	if key.ID() == 0 {
		if err := key.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set key ID: %w", err)
		}
	}

	return nil
}

func (r *licenseKeyRepository) GetByKeyID(ctx context.Context, keyID string) (*license.Key, error) {
	var model models.LicenseKeyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("key_id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, license.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get license key: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Redeem flips the key from unused to used with a conditional update. The
// status guard in the WHERE clause is what makes concurrent redemptions of
// the same key resolve to exactly one winner.
func (r *licenseKeyRepository) Redeem(ctx context.Context, keyID string, accountID string, at time.Time) error {
	at = at.UTC()

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.LicenseKeyModel{}).
		Where("key_id = ? AND status = ?", keyID, license.KeyStatusUnused.String()).
		Updates(map[string]interface{}{
			"status":      license.KeyStatusUsed.String(),
			"redeemed_by": accountID,
			"redeemed_at": at,
			"updated_at":  at,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to redeem license key", "key_id", keyID, "error", result.Error)
		return fmt.Errorf("failed to redeem license key: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.LicenseKeyModel{}).Where("key_id = ?", keyID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check license key: %w", err)
		}
		if count == 0 {
			return license.ErrKeyNotFound
		}
		return license.ErrKeyAlreadyUsed
	}

	return nil
}

func (r *licenseKeyRepository) List(ctx context.Context) ([]*license.Key, error) {
	var modelList []*models.LicenseKeyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list license keys: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
