package usecases

import (
	"context"
	"time"

	"modgate/internal/application/license/dto"
	"modgate/internal/domain/license"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// RevokeSessionUseCase removes an account's session row on admin request.
// Outstanding credentials for the account keep verifying offline until
// their embedded expiry; revocation only forces the next authorization to
// spend a fresh key.
type RevokeSessionUseCase struct {
	sessions     license.SessionRepository
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewRevokeSessionUseCase creates a new revoke session use case.
func NewRevokeSessionUseCase(sessions license.SessionRepository, storeTimeout time.Duration, logger logger.Interface) *RevokeSessionUseCase {
	return &RevokeSessionUseCase{
		sessions:     sessions,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute deletes the session for the account. Idempotent.
func (uc *RevokeSessionUseCase) Execute(ctx context.Context, accountID string) (*dto.RevokeSessionResponse, error) {
	accountID = utils.NormalizeAccountID(accountID)

	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	existed, err := uc.sessions.DeleteByAccount(sctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to revoke session", "account_id", accountID, "error", err)
		return nil, mapStoreError(err)
	}

	uc.logger.Infow("session revoked", "account_id", accountID, "existed", existed)

	return &dto.RevokeSessionResponse{
		AccountID: accountID,
		Existed:   existed,
	}, nil
}
