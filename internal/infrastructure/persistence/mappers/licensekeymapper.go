package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"modgate/internal/domain/license"
	"modgate/internal/infrastructure/persistence/models"
)

// LicenseKeyMapper converts between license key domain objects and GORM models.
type LicenseKeyMapper struct{}

func NewLicenseKeyMapper() *LicenseKeyMapper {
	return &LicenseKeyMapper{}
}

// ToModel converts a domain key to its persistence model.
func (m *LicenseKeyMapper) ToModel(key *license.Key) (*models.LicenseKeyModel, error) {
	if key == nil {
		return nil, fmt.Errorf("key cannot be nil")
	}

	var metadata datatypes.JSON
	if len(key.Metadata()) > 0 {
		raw, err := json.Marshal(key.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}

	var redeemedBy *string
	if key.RedeemedBy() != "" {
		v := key.RedeemedBy()
		redeemedBy = &v
	}

	return &models.LicenseKeyModel{
		ID:            key.ID(),
		KeyID:         key.KeyID(),
		Status:        key.Status().String(),
		DurationHours: key.DurationHours(),
		Metadata:      metadata,
		RedeemedBy:    redeemedBy,
		RedeemedAt:    key.RedeemedAt(),
		CreatedAt:     key.CreatedAt(),
		UpdatedAt:     key.UpdatedAt(),
	}, nil
}

// ToDomain converts a persistence model to a domain key.
func (m *LicenseKeyMapper) ToDomain(model *models.LicenseKeyModel) (*license.Key, error) {
	if model == nil {
		return nil, fmt.Errorf("model cannot be nil")
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal key metadata: %w", err)
		}
	}

	redeemedBy := ""
	if model.RedeemedBy != nil {
		redeemedBy = *model.RedeemedBy
	}

	return license.ReconstructKey(
		model.ID,
		model.KeyID,
		license.KeyStatus(model.Status),
		model.DurationHours,
		metadata,
		redeemedBy,
		model.RedeemedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToDomainList converts a list of persistence models to domain keys.
func (m *LicenseKeyMapper) ToDomainList(modelList []*models.LicenseKeyModel) ([]*license.Key, error) {
	keys := make([]*license.Key, 0, len(modelList))
	for _, model := range modelList {
		key, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
