package migration

import (
	"fmt"

	"gorm.io/gorm"

	"modgate/internal/infrastructure/persistence/models"
	"modgate/internal/shared/logger"
)

// AutoMigrateModels returns the persistence models that make up the
// entitlement store schema.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.LicenseKeyModel{},
		&models.SessionModel{},
		&models.FileEntryModel{},
	}
}

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate.
// Suitable for development and tests where schema drift is acceptable.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
