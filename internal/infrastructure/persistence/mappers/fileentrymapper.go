package mappers

import (
	"fmt"

	"modgate/internal/domain/registry"
	"modgate/internal/infrastructure/persistence/models"
)

// FileEntryMapper converts between file registry domain objects and GORM models.
type FileEntryMapper struct{}

func NewFileEntryMapper() *FileEntryMapper {
	return &FileEntryMapper{}
}

// ToModel converts a domain entry to its persistence model.
func (m *FileEntryMapper) ToModel(entry *registry.FileEntry) (*models.FileEntryModel, error) {
	if entry == nil {
		return nil, fmt.Errorf("entry cannot be nil")
	}

	return &models.FileEntryModel{
		ID:        entry.ID,
		Name:      entry.Name,
		Locator:   entry.Locator,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}, nil
}

// ToDomain converts a persistence model to a domain entry.
func (m *FileEntryMapper) ToDomain(model *models.FileEntryModel) (*registry.FileEntry, error) {
	if model == nil {
		return nil, fmt.Errorf("model cannot be nil")
	}

	return &registry.FileEntry{
		ID:        model.ID,
		Name:      model.Name,
		Locator:   model.Locator,
		Notes:     model.Notes,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// ToDomainList converts a list of persistence models to domain entries.
func (m *FileEntryMapper) ToDomainList(modelList []*models.FileEntryModel) ([]*registry.FileEntry, error) {
	entries := make([]*registry.FileEntry, 0, len(modelList))
	for _, model := range modelList {
		entry, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
