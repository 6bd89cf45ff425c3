package license

import (
	"context"
	"time"
)

// KeyRepository defines the interface for license key persistence operations.
type KeyRepository interface {
	// Create inserts a new license key.
	Create(ctx context.Context, key *Key) error

	// GetByKeyID retrieves a key by its opaque identifier.
	// Returns ErrKeyNotFound when absent.
	GetByKeyID(ctx context.Context, keyID string) (*Key, error)

	// Redeem flips a key from unused to used for the given account, guarded
	// by the prior status so that concurrent redemptions of the same key
	// cannot both succeed. Returns ErrKeyNotFound when absent and
	// ErrKeyAlreadyUsed when the guard fails.
	Redeem(ctx context.Context, keyID string, accountID string, at time.Time) error

	// List returns all keys, newest first.
	List(ctx context.Context) ([]*Key, error)
}

// SessionRepository defines the interface for session persistence operations.
type SessionRepository interface {
	// GetByAccount retrieves the session for an account.
	// Returns ErrSessionNotFound when absent.
	GetByAccount(ctx context.Context, accountID string) (*Session, error)

	// Upsert atomically replaces the session row for the account.
	// Last writer wins.
	Upsert(ctx context.Context, session *Session) error

	// DeleteByAccount removes the session for an account. Idempotent;
	// reports whether a row existed.
	DeleteByAccount(ctx context.Context, accountID string) (bool, error)
}
