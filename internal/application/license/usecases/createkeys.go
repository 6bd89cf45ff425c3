package usecases

import (
	"context"
	"time"

	"modgate/internal/application/license/dto"
	"modgate/internal/domain/license"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/id"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// maxKeysPerBatch bounds a single minting request.
const maxKeysPerBatch = 100

// CreateKeysUseCase mints unused license keys for the admin API, optionally
// delivering them by email.
type CreateKeysUseCase struct {
	keys         license.KeyRepository
	sender       KeySender
	keyLength    int
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewCreateKeysUseCase creates a new create keys use case. sender may be nil
// when email delivery is not configured.
func NewCreateKeysUseCase(
	keys license.KeyRepository,
	sender KeySender,
	keyLength int,
	storeTimeout time.Duration,
	logger logger.Interface,
) *CreateKeysUseCase {
	if keyLength <= 0 {
		keyLength = id.DefaultKeyLength
	}
	return &CreateKeysUseCase{
		keys:         keys,
		sender:       sender,
		keyLength:    keyLength,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute mints the requested keys.
func (uc *CreateKeysUseCase) Execute(ctx context.Context, request dto.CreateKeysRequest) (*dto.CreateKeysResponse, error) {
	if err := utils.ValidateDurationHours(request.DurationHours); err != nil {
		return nil, apperrors.NewValidationError("duration_hours must be between 1 and 8760")
	}

	count := request.Count
	if count <= 0 {
		count = 1
	}
	if count > maxKeysPerBatch {
		return nil, apperrors.NewValidationError("count exceeds the per-request limit", "limit is 100")
	}

	responses := make([]*dto.KeyResponse, 0, count)
	for i := 0; i < count; i++ {
		keyID, err := id.NewLicenseKeyID(uc.keyLength)
		if err != nil {
			uc.logger.Errorw("failed to generate key identifier", "error", err)
			return nil, apperrors.NewInternalError("failed to generate key identifier")
		}

		key, err := license.NewKey(keyID, request.DurationHours)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		for k, v := range request.Metadata {
			key.SetMetadata(k, v)
		}

		sctx, cancel := storeContext(ctx, uc.storeTimeout)
		err = uc.keys.Create(sctx, key)
		cancel()
		if err != nil {
			uc.logger.Errorw("failed to persist license key", "error", err)
			return nil, mapStoreError(err)
		}

		responses = append(responses, keyToResponse(key))
	}

	uc.logger.Infow("license keys created",
		"count", count,
		"duration_hours", request.DurationHours)

	if request.Email != "" && uc.sender != nil {
		for _, key := range responses {
			if err := uc.sender.SendLicenseKey(request.Email, key.KeyID, key.DurationHours); err != nil {
				// Delivery is best-effort; the keys are already minted
				// and returned in the response.
				uc.logger.Warnw("failed to deliver license key by email",
					"email", request.Email, "error", err)
			}
		}
	}

	return &dto.CreateKeysResponse{Keys: responses}, nil
}

// keyToResponse maps a domain key to its transport shape.
func keyToResponse(key *license.Key) *dto.KeyResponse {
	metadata := key.Metadata()
	if len(metadata) == 0 {
		metadata = nil
	}
	return &dto.KeyResponse{
		ID:            key.ID(),
		KeyID:         key.KeyID(),
		Status:        key.Status().String(),
		DurationHours: key.DurationHours(),
		Metadata:      metadata,
		RedeemedBy:    key.RedeemedBy(),
		RedeemedAt:    key.RedeemedAt(),
		CreatedAt:     key.CreatedAt(),
	}
}
