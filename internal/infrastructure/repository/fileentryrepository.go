package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"modgate/internal/domain/registry"
	"modgate/internal/infrastructure/persistence/mappers"
	"modgate/internal/infrastructure/persistence/models"
	"modgate/internal/shared/db"
	"modgate/internal/shared/logger"
)

type fileEntryRepository struct {
	db     *gorm.DB
	mapper *mappers.FileEntryMapper
	logger logger.Interface
}

// NewFileEntryRepository creates a GORM-backed file registry repository.
func NewFileEntryRepository(database *gorm.DB) registry.Repository {
	return &fileEntryRepository{
		db:     database,
		mapper: mappers.NewFileEntryMapper(),
		logger: logger.NewLogger().With("component", "repository.file_entry"),
	}
}

func (r *fileEntryRepository) GetByName(ctx context.Context, name string) (*registry.FileEntry, error) {
	var model models.FileEntryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registry.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get file entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *fileEntryRepository) Upsert(ctx context.Context, entry *registry.FileEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return fmt.Errorf("failed to map file entry to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"locator", "notes", "updated_at"}),
	}).Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert file entry", "name", entry.Name, "error", err)
		return fmt.Errorf("failed to upsert file entry: %w", err)
	}

	return nil
}

func (r *fileEntryRepository) Delete(ctx context.Context, name string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("name = ?", name).Delete(&models.FileEntryModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete file entry", "name", name, "error", result.Error)
		return false, fmt.Errorf("failed to delete file entry: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *fileEntryRepository) List(ctx context.Context) ([]*registry.FileEntry, error) {
	var modelList []*models.FileEntryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list file entries: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
