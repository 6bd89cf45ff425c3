package license

import "time"

// Session is the server-side record of an account's current entitlement
// window. At most one session exists per account; a newer session replaces
// an older one.
type Session struct {
	AccountID string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a session for an account with the given expiry.
func NewSession(accountID string, expiresAt time.Time) (*Session, error) {
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}

	now := time.Now().UTC()
	return &Session{
		AccountID: accountID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsExpired reports whether the session's entitlement window has passed
// relative to the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Remaining returns the entitlement time left relative to the given instant.
// Expired sessions report zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	remaining := s.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
