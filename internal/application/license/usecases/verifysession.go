package usecases

import (
	"context"
	"errors"

	"modgate/internal/application/license/dto"
	"modgate/internal/infrastructure/auth"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/biztime"
	"modgate/internal/shared/logger"
)

// VerifySessionUseCase validates a session credential. Verification is a
// pure function of the credential and the signing secret; it never touches
// the entitlement store.
type VerifySessionUseCase struct {
	credentials CredentialService
	logger      logger.Interface
}

// NewVerifySessionUseCase creates a new verify session use case.
func NewVerifySessionUseCase(credentials CredentialService, logger logger.Interface) *VerifySessionUseCase {
	return &VerifySessionUseCase{
		credentials: credentials,
		logger:      logger,
	}
}

// Execute verifies the credential and reports the authenticated account and
// remaining validity. Each failure mode maps to a distinct error kind.
func (uc *VerifySessionUseCase) Execute(_ context.Context, request dto.VerifySessionRequest) (*dto.VerifySessionResponse, error) {
	accountID, expiry, err := uc.credentials.Verify(request.SessionToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMalformedToken):
			return nil, apperrors.NewMalformedTokenError()
		case errors.Is(err, auth.ErrMalformedTimestamp):
			return nil, apperrors.NewMalformedTimestampError()
		case errors.Is(err, auth.ErrTokenExpired):
			return nil, apperrors.NewTokenExpiredError()
		case errors.Is(err, auth.ErrBadSignature):
			return nil, apperrors.NewBadSignatureError()
		default:
			uc.logger.Errorw("unexpected credential verification failure", "error", err)
			return nil, apperrors.NewInternalError("credential verification failed")
		}
	}

	now := biztime.NowUTC()
	return &dto.VerifySessionResponse{
		Valid:          true,
		AccountID:      accountID,
		ExpiresAt:      biztime.FormatExpiry(expiry),
		HoursRemaining: biztime.HoursRemaining(expiry, now),
	}, nil
}
