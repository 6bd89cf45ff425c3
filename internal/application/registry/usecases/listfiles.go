package usecases

import (
	"context"
	"time"

	"modgate/internal/application/registry/dto"
	"modgate/internal/domain/registry"
	"modgate/internal/shared/logger"
)

// ListFilesUseCase returns all file registry entries.
type ListFilesUseCase struct {
	files        registry.Repository
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewListFilesUseCase creates a new list files use case.
func NewListFilesUseCase(files registry.Repository, storeTimeout time.Duration, logger logger.Interface) *ListFilesUseCase {
	return &ListFilesUseCase{
		files:        files,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute lists all entries ordered by name.
func (uc *ListFilesUseCase) Execute(ctx context.Context) (*dto.ListFilesResponse, error) {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	entries, err := uc.files.List(sctx)
	if err != nil {
		uc.logger.Errorw("failed to list file entries", "error", err)
		return nil, mapStoreError(err)
	}

	responses := make([]*dto.FileEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entryToResponse(entry))
	}

	return &dto.ListFilesResponse{Files: responses}, nil
}
