package usecases

import (
	"context"
	"time"

	"modgate/internal/application/registry/dto"
	"modgate/internal/domain/registry"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/logger"
)

// DeleteFileUseCase removes a file registry entry.
type DeleteFileUseCase struct {
	files        registry.Repository
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewDeleteFileUseCase creates a new delete file use case.
func NewDeleteFileUseCase(files registry.Repository, storeTimeout time.Duration, logger logger.Interface) *DeleteFileUseCase {
	return &DeleteFileUseCase{
		files:        files,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute deletes the entry by name. Idempotent.
func (uc *DeleteFileUseCase) Execute(ctx context.Context, name string) (*dto.DeleteFileResponse, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("file name is required")
	}

	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	existed, err := uc.files.Delete(sctx, name)
	if err != nil {
		uc.logger.Errorw("failed to delete file entry", "name", name, "error", err)
		return nil, mapStoreError(err)
	}

	uc.logger.Infow("file entry deleted", "name", name, "existed", existed)

	return &dto.DeleteFileResponse{Name: name, Existed: existed}, nil
}
