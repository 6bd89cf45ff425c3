package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"modgate/internal/domain/license"
	"modgate/internal/infrastructure/persistence/mappers"
	"modgate/internal/infrastructure/persistence/models"
	"modgate/internal/shared/db"
	"modgate/internal/shared/logger"
)

type sessionRepository struct {
	db     *gorm.DB
	mapper *mappers.SessionMapper
	logger logger.Interface
}

// NewSessionRepository creates a GORM-backed session repository.
func NewSessionRepository(database *gorm.DB) license.SessionRepository {
	return &sessionRepository{
		db:     database,
		mapper: mappers.NewSessionMapper(),
		logger: logger.NewLogger().With("component", "repository.session"),
	}
}

func (r *sessionRepository) GetByAccount(ctx context.Context, accountID string) (*license.Session, error) {
	var model models.SessionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("account_id = ?", accountID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, license.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Upsert replaces the session row for the account in a single statement.
// Last writer wins.
func (r *sessionRepository) Upsert(ctx context.Context, session *license.Session) error {
	model, err := r.mapper.ToModel(session)
	if err != nil {
		return fmt.Errorf("failed to map session to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"expires_at", "updated_at"}),
	}).Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert session", "account_id", session.AccountID, "error", err)
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	return nil
}

func (r *sessionRepository) DeleteByAccount(ctx context.Context, accountID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("account_id = ?", accountID).Delete(&models.SessionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete session", "account_id", accountID, "error", result.Error)
		return false, fmt.Errorf("failed to delete session: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
