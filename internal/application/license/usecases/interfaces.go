package usecases

import (
	"context"
	"errors"
	"time"

	apperrors "modgate/internal/shared/errors"
)

// IdentityVerifier authenticates an opaque identity credential to a verified
// account identifier. The authorization flow treats it as a black box.
type IdentityVerifier interface {
	Verify(ctx context.Context, token, tokenType string) (accountID string, err error)
}

// CredentialService issues and verifies self-contained session credentials.
type CredentialService interface {
	IssueAt(accountID string, expiry time.Time) (string, error)
	Verify(token string) (accountID string, expiry time.Time, err error)
}

// TransactionManager runs a function within a storage transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// KeySender delivers minted license keys out of band.
type KeySender interface {
	SendLicenseKey(to, key string, durationHours int) error
}

// defaultStoreTimeout bounds entitlement store calls when no explicit
// timeout is configured.
const defaultStoreTimeout = 5 * time.Second

// storeContext derives a context bounded by the store query timeout.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// mapStoreError converts an infrastructure failure into the retryable store
// error kinds. Timeouts and outages are distinguishable to callers.
func mapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreTimeoutError(err.Error())
	}
	return apperrors.NewStoreUnavailableError(err.Error())
}
