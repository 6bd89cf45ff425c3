package usecases

import (
	"context"
	"errors"
	"time"

	"modgate/internal/application/registry/dto"
	"modgate/internal/domain/registry"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/logger"
)

// UpsertFileUseCase creates or replaces a file registry entry.
type UpsertFileUseCase struct {
	files        registry.Repository
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewUpsertFileUseCase creates a new upsert file use case.
func NewUpsertFileUseCase(files registry.Repository, storeTimeout time.Duration, logger logger.Interface) *UpsertFileUseCase {
	return &UpsertFileUseCase{
		files:        files,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute upserts the entry and returns its stored form.
func (uc *UpsertFileUseCase) Execute(ctx context.Context, request dto.UpsertFileRequest) (*dto.FileEntryResponse, error) {
	entry, err := registry.NewFileEntry(request.Name, request.Locator, request.Notes)
	if err != nil {
		if errors.Is(err, registry.ErrNameRequired) || errors.Is(err, registry.ErrLocatorRequired) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, apperrors.NewValidationError("invalid file entry")
	}

	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	if err := uc.files.Upsert(sctx, entry); err != nil {
		uc.logger.Errorw("failed to upsert file entry", "name", request.Name, "error", err)
		return nil, mapStoreError(err)
	}

	stored, err := uc.files.GetByName(sctx, request.Name)
	if err != nil {
		uc.logger.Errorw("failed to reload file entry", "name", request.Name, "error", err)
		return nil, mapStoreError(err)
	}

	uc.logger.Infow("file entry upserted", "name", stored.Name)

	return entryToResponse(stored), nil
}

// entryToResponse maps a domain entry to its transport shape.
func entryToResponse(entry *registry.FileEntry) *dto.FileEntryResponse {
	return &dto.FileEntryResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		Locator:   entry.Locator,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
