package usecases

import (
	"context"
	"errors"
	"time"

	"modgate/internal/application/license/dto"
	"modgate/internal/domain/license"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/biztime"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// StatusUseCase reports whether an account holds an active session. It is
// strictly read-only: no key is consumed and no session row is created,
// refreshed, or removed, even when the session has expired.
type StatusUseCase struct {
	identity     IdentityVerifier
	sessions     license.SessionRepository
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewStatusUseCase creates a new status use case.
func NewStatusUseCase(
	identity IdentityVerifier,
	sessions license.SessionRepository,
	storeTimeout time.Duration,
	logger logger.Interface,
) *StatusUseCase {
	return &StatusUseCase{
		identity:     identity,
		sessions:     sessions,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute runs the status check.
func (uc *StatusUseCase) Execute(ctx context.Context, request dto.StatusRequest) (*dto.StatusResponse, error) {
	accountID, err := uc.identity.Verify(ctx, request.IdentityToken, request.TokenType)
	if err != nil {
		uc.logger.Warnw("identity verification failed", "error", err)
		return nil, apperrors.NewIdentityVerificationFailedError()
	}
	accountID = utils.NormalizeAccountID(accountID)

	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	session, err := uc.sessions.GetByAccount(sctx, accountID)
	if err != nil {
		if errors.Is(err, license.ErrSessionNotFound) {
			return &dto.StatusResponse{AccountID: accountID, Active: false}, nil
		}
		uc.logger.Errorw("failed to load session", "account_id", accountID, "error", err)
		return nil, mapStoreError(err)
	}

	now := biztime.NowUTC()
	if session.IsExpired(now) {
		return &dto.StatusResponse{AccountID: accountID, Active: false}, nil
	}

	return &dto.StatusResponse{
		AccountID:      accountID,
		Active:         true,
		ExpiresAt:      biztime.FormatExpiry(session.ExpiresAt),
		HoursRemaining: biztime.HoursRemaining(session.ExpiresAt, now),
	}, nil
}
