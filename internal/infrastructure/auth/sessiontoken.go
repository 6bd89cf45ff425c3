package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"modgate/internal/shared/biztime"
)

const (
	// tagHexLength is the length of the hex-encoded authentication tag.
	// 16 hex characters carry 64 bits of the HMAC-SHA256 output. The
	// truncation is a deliberate size/security tradeoff baked into the
	// wire format; widening it breaks every outstanding credential.
	tagHexLength = 16

	// fieldSeparator joins the three credential fields. Account
	// identifiers containing it are rejected at issuance.
	fieldSeparator = ":"
)

// Verification error kinds. Each failure mode is distinguishable so callers
// can report a machine-readable reason.
var (
	ErrMalformedToken     = errors.New("malformed session token")
	ErrMalformedTimestamp = errors.New("malformed expiry timestamp")
	ErrTokenExpired       = errors.New("session token expired")
	ErrBadSignature       = errors.New("invalid session token signature")
	ErrUnsafeAccountID    = errors.New("account identifier contains the field separator")
)

// SessionTokenService issues and verifies self-contained session credentials.
// Token format: <account>:<expiry RFC3339 UTC>:<hex tag>
// Tag: hex(HMAC-SHA256(secret, "<account>:<expiry>"))[:16]
//
// Verification is a pure function of the token and the process-wide secret;
// any holder of the secret can verify offline, without contacting the
// server or its store.
type SessionTokenService struct {
	secret []byte
}

// NewSessionTokenService creates a SessionTokenService with the given
// signing secret. The secret is immutable for the process lifetime.
func NewSessionTokenService(secret string) *SessionTokenService {
	return &SessionTokenService{
		secret: []byte(secret),
	}
}

// Issue mints a credential for the account valid for the given duration
// from now.
func (s *SessionTokenService) Issue(accountID string, validity time.Duration) (string, error) {
	return s.IssueAt(accountID, biztime.NowUTC().Add(validity))
}

// IssueAt mints a credential for the account with an explicit expiry.
func (s *SessionTokenService) IssueAt(accountID string, expiry time.Time) (string, error) {
	if accountID == "" {
		return "", fmt.Errorf("account identifier is required")
	}
	if strings.Contains(accountID, fieldSeparator) {
		return "", ErrUnsafeAccountID
	}

	expiryStr := biztime.FormatExpiry(expiry)
	tag := s.computeTag(accountID, expiryStr)
	return accountID + fieldSeparator + expiryStr + fieldSeparator + tag, nil
}

// Verify validates a credential and returns the authenticated account and
// its expiry. Checks run in a fixed order: shape, expiry parse, expiry,
// signature. The signature comparison is constant-time.
func (s *SessionTokenService) Verify(token string) (accountID string, expiry time.Time, err error) {
	return s.VerifyAt(token, biztime.NowUTC())
}

// VerifyAt validates a credential against an explicit check time.
func (s *SessionTokenService) VerifyAt(token string, now time.Time) (string, time.Time, error) {
	if token == "" {
		return "", time.Time{}, ErrMalformedToken
	}

	// The expiry field itself contains colons (RFC3339), so the three
	// fields are delimited by the first and last separator. The account
	// cannot contain one (rejected at issuance) and the tag is pure hex.
	first := strings.Index(token, fieldSeparator)
	last := strings.LastIndex(token, fieldSeparator)
	if first < 0 || last <= first {
		return "", time.Time{}, ErrMalformedToken
	}

	accountID := token[:first]
	expiryStr := token[first+1 : last]
	tag := token[last+1:]

	if accountID == "" || expiryStr == "" || len(tag) != tagHexLength {
		return "", time.Time{}, ErrMalformedToken
	}
	if _, err := hex.DecodeString(tag); err != nil {
		return "", time.Time{}, ErrMalformedToken
	}

	expiry, err := biztime.ParseExpiry(expiryStr)
	if err != nil {
		return "", time.Time{}, ErrMalformedTimestamp
	}

	if now.After(expiry) {
		return "", time.Time{}, ErrTokenExpired
	}

	expectedTag := s.computeTag(accountID, expiryStr)
	if !hmac.Equal([]byte(tag), []byte(expectedTag)) {
		return "", time.Time{}, ErrBadSignature
	}

	return accountID, expiry, nil
}

// computeTag computes the truncated authentication tag over the canonical
// message "<account>:<expiry>".
func (s *SessionTokenService) computeTag(accountID, expiryStr string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(accountID + fieldSeparator + expiryStr))
	return hex.EncodeToString(h.Sum(nil))[:tagHexLength]
}
