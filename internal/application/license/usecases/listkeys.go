package usecases

import (
	"context"
	"time"

	"modgate/internal/application/license/dto"
	"modgate/internal/domain/license"
	"modgate/internal/shared/logger"
)

// ListKeysUseCase returns all license keys for the admin API.
type ListKeysUseCase struct {
	keys         license.KeyRepository
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewListKeysUseCase creates a new list keys use case.
func NewListKeysUseCase(keys license.KeyRepository, storeTimeout time.Duration, logger logger.Interface) *ListKeysUseCase {
	return &ListKeysUseCase{
		keys:         keys,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute lists all keys, newest first.
func (uc *ListKeysUseCase) Execute(ctx context.Context) (*dto.ListKeysResponse, error) {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	keys, err := uc.keys.List(sctx)
	if err != nil {
		uc.logger.Errorw("failed to list license keys", "error", err)
		return nil, mapStoreError(err)
	}

	responses := make([]*dto.KeyResponse, 0, len(keys))
	for _, key := range keys {
		responses = append(responses, keyToResponse(key))
	}

	return &dto.ListKeysResponse{Keys: responses}, nil
}
