package usecases

import (
	"context"
	"errors"
	"time"

	apperrors "modgate/internal/shared/errors"
)

// defaultStoreTimeout bounds registry store calls when no explicit timeout
// is configured.
const defaultStoreTimeout = 5 * time.Second

func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func mapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreTimeoutError(err.Error())
	}
	return apperrors.NewStoreUnavailableError(err.Error())
}
