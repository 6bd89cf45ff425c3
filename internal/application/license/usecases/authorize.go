package usecases

import (
	"context"
	"errors"
	"time"

	"modgate/internal/application/license/dto"
	"modgate/internal/domain/license"
	"modgate/internal/domain/registry"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/biztime"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// AuthorizeUseCase is the authorization engine. It verifies the caller's
// identity, reuses an active session when one exists, and otherwise redeems
// a single-use license key to open a new session. A session credential is
// issued on every successful path.
type AuthorizeUseCase struct {
	identity     IdentityVerifier
	keys         license.KeyRepository
	sessions     license.SessionRepository
	files        registry.Repository
	credentials  CredentialService
	txManager    TransactionManager
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewAuthorizeUseCase creates a new authorize use case.
func NewAuthorizeUseCase(
	identity IdentityVerifier,
	keys license.KeyRepository,
	sessions license.SessionRepository,
	files registry.Repository,
	credentials CredentialService,
	txManager TransactionManager,
	storeTimeout time.Duration,
	logger logger.Interface,
) *AuthorizeUseCase {
	return &AuthorizeUseCase{
		identity:     identity,
		keys:         keys,
		sessions:     sessions,
		files:        files,
		credentials:  credentials,
		txManager:    txManager,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute runs the authorization flow.
func (uc *AuthorizeUseCase) Execute(ctx context.Context, request dto.AuthorizeRequest) (*dto.AuthorizeResponse, error) {
	accountID, err := uc.verifyIdentity(ctx, request.IdentityToken, request.TokenType)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()

	session, err := uc.getSession(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if session != nil {
		if !session.IsExpired(now) {
			// Active session: reuse it without touching any key the
			// caller may have supplied.
			return uc.grant(ctx, accountID, session.ExpiresAt, now, false, request.FileName)
		}

		// Expired sessions are removed lazily, on the next authorization
		// attempt by the same account.
		if err := uc.deleteExpiredSession(ctx, accountID); err != nil {
			return nil, err
		}
		uc.logger.Infow("expired session removed", "account_id", accountID)
	}

	if request.LicenseKey == "" {
		return nil, apperrors.NewKeyRequiredError()
	}

	key, err := uc.getKey(ctx, request.LicenseKey)
	if err != nil {
		return nil, err
	}
	if key.IsUsed() {
		return nil, apperrors.NewKeyAlreadyUsedError()
	}

	// Resolve the requested file before redeeming so an unknown file name
	// cannot waste a key.
	if request.FileName != "" {
		if _, err := uc.getFile(ctx, request.FileName); err != nil {
			return nil, err
		}
	}

	expiry := now.Add(key.Duration())
	if err := uc.redeem(ctx, key.KeyID(), accountID, expiry, now); err != nil {
		return nil, err
	}

	uc.logger.Infow("license key redeemed",
		"account_id", accountID,
		"key_id", key.KeyID(),
		"duration_hours", key.DurationHours(),
		"expires_at", biztime.FormatExpiry(expiry))

	return uc.grant(ctx, accountID, expiry, now, true, request.FileName)
}

// verifyIdentity authenticates the caller and canonicalizes the account
// identifier.
func (uc *AuthorizeUseCase) verifyIdentity(ctx context.Context, token, tokenType string) (string, error) {
	accountID, err := uc.identity.Verify(ctx, token, tokenType)
	if err != nil {
		uc.logger.Warnw("identity verification failed", "error", err)
		return "", apperrors.NewIdentityVerificationFailedError()
	}

	accountID = utils.NormalizeAccountID(accountID)
	if err := utils.ValidateAccountID(accountID); err != nil {
		uc.logger.Warnw("unusable account identifier", "error", err)
		return "", apperrors.NewIdentityVerificationFailedError("account identifier not usable")
	}

	return accountID, nil
}

func (uc *AuthorizeUseCase) getSession(ctx context.Context, accountID string) (*license.Session, error) {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	session, err := uc.sessions.GetByAccount(sctx, accountID)
	if err != nil {
		if errors.Is(err, license.ErrSessionNotFound) {
			return nil, nil
		}
		uc.logger.Errorw("failed to load session", "account_id", accountID, "error", err)
		return nil, mapStoreError(err)
	}
	return session, nil
}

func (uc *AuthorizeUseCase) deleteExpiredSession(ctx context.Context, accountID string) error {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	if _, err := uc.sessions.DeleteByAccount(sctx, accountID); err != nil {
		uc.logger.Errorw("failed to delete expired session", "account_id", accountID, "error", err)
		return mapStoreError(err)
	}
	return nil
}

func (uc *AuthorizeUseCase) getKey(ctx context.Context, keyID string) (*license.Key, error) {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	key, err := uc.keys.GetByKeyID(sctx, keyID)
	if err != nil {
		if errors.Is(err, license.ErrKeyNotFound) {
			return nil, apperrors.NewInvalidKeyError()
		}
		uc.logger.Errorw("failed to load license key", "error", err)
		return nil, mapStoreError(err)
	}
	return key, nil
}

func (uc *AuthorizeUseCase) getFile(ctx context.Context, name string) (*registry.FileEntry, error) {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	entry, err := uc.files.GetByName(sctx, name)
	if err != nil {
		if errors.Is(err, registry.ErrEntryNotFound) {
			return nil, apperrors.NewResourceNotFoundError(name)
		}
		uc.logger.Errorw("failed to load file entry", "name", name, "error", err)
		return nil, mapStoreError(err)
	}
	return entry, nil
}

// redeem applies the key status flip and the session upsert as one atomic
// unit. Concurrent redemptions of the same key resolve to exactly one
// winner; the losers observe the key as already used.
func (uc *AuthorizeUseCase) redeem(ctx context.Context, keyID, accountID string, expiry, now time.Time) error {
	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	err := uc.txManager.RunInTransaction(sctx, func(txCtx context.Context) error {
		if err := uc.keys.Redeem(txCtx, keyID, accountID, now); err != nil {
			return err
		}

		session, err := license.NewSession(accountID, expiry)
		if err != nil {
			return err
		}
		return uc.sessions.Upsert(txCtx, session)
	})
	if err != nil {
		switch {
		case errors.Is(err, license.ErrKeyAlreadyUsed):
			return apperrors.NewKeyAlreadyUsedError()
		case errors.Is(err, license.ErrKeyNotFound):
			return apperrors.NewInvalidKeyError()
		default:
			uc.logger.Errorw("redemption transaction failed", "key_id", keyID, "error", err)
			return mapStoreError(err)
		}
	}
	return nil
}

// grant issues the session credential and assembles the response. It runs on
// both the session reuse path and the fresh redemption path.
func (uc *AuthorizeUseCase) grant(ctx context.Context, accountID string, expiry, now time.Time, keyRedeemed bool, fileName string) (*dto.AuthorizeResponse, error) {
	var grant *dto.FileGrant
	if fileName != "" {
		entry, err := uc.getFile(ctx, fileName)
		if err != nil {
			return nil, err
		}
		grant = &dto.FileGrant{Name: entry.Name, Locator: entry.Locator}
	}

	token, err := uc.credentials.IssueAt(accountID, expiry)
	if err != nil {
		uc.logger.Errorw("failed to issue session credential", "account_id", accountID, "error", err)
		return nil, apperrors.NewInternalError("failed to issue session credential")
	}

	return &dto.AuthorizeResponse{
		AccountID:      accountID,
		SessionToken:   token,
		ExpiresAt:      biztime.FormatExpiry(expiry),
		HoursRemaining: biztime.HoursRemaining(expiry, now),
		KeyRedeemed:    keyRedeemed,
		File:           grant,
	}, nil
}
