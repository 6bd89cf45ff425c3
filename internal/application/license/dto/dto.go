package dto

import "time"

// AuthorizeRequest is the request for the authorization operation. The
// identity token is mandatory; the license key is only consulted when the
// account has no active session.
type AuthorizeRequest struct {
	IdentityToken string `json:"identity_token" binding:"required"`
	TokenType     string `json:"token_type,omitempty"`
	LicenseKey    string `json:"license_key,omitempty"`
	FileName      string `json:"file_name,omitempty"`
}

// FileGrant carries the resolved retrieval locator for a requested file.
type FileGrant struct {
	Name    string `json:"name"`
	Locator string `json:"locator"`
}

// AuthorizeResponse is the successful authorization result.
type AuthorizeResponse struct {
	AccountID      string     `json:"account_id"`
	SessionToken   string     `json:"session_token"`
	ExpiresAt      string     `json:"expires_at"` // RFC3339 UTC
	HoursRemaining float64    `json:"hours_remaining"`
	KeyRedeemed    bool       `json:"key_redeemed"`
	File           *FileGrant `json:"file,omitempty"`
}

// VerifySessionRequest is the request to verify a session credential.
type VerifySessionRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
}

// VerifySessionResponse reports the outcome of credential verification.
type VerifySessionResponse struct {
	Valid          bool    `json:"valid"`
	AccountID      string  `json:"account_id"`
	ExpiresAt      string  `json:"expires_at"` // RFC3339 UTC
	HoursRemaining float64 `json:"hours_remaining"`
}

// StatusRequest is the request for a read-only session status check.
type StatusRequest struct {
	IdentityToken string `json:"identity_token" binding:"required"`
	TokenType     string `json:"token_type,omitempty"`
}

// StatusResponse reports whether an account currently holds an active
// session. The check never mutates state.
type StatusResponse struct {
	AccountID      string  `json:"account_id"`
	Active         bool    `json:"active"`
	ExpiresAt      string  `json:"expires_at,omitempty"` // RFC3339 UTC
	HoursRemaining float64 `json:"hours_remaining"`
}

// CreateKeysRequest is the admin request to mint license keys.
type CreateKeysRequest struct {
	DurationHours int            `json:"duration_hours" binding:"required,min=1,max=8760"`
	Count         int            `json:"count,omitempty"`
	Email         string         `json:"email,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// KeyResponse represents a single license key.
type KeyResponse struct {
	ID            uint           `json:"id"`
	KeyID         string         `json:"key_id"`
	Status        string         `json:"status"`
	DurationHours int            `json:"duration_hours"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	RedeemedBy    string         `json:"redeemed_by,omitempty"`
	RedeemedAt    *time.Time     `json:"redeemed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// CreateKeysResponse returns the freshly minted keys.
type CreateKeysResponse struct {
	Keys []*KeyResponse `json:"keys"`
}

// ListKeysResponse returns all keys, newest first.
type ListKeysResponse struct {
	Keys []*KeyResponse `json:"keys"`
}

// RevokeSessionResponse reports the outcome of an admin session revocation.
type RevokeSessionResponse struct {
	AccountID string `json:"account_id"`
	Existed   bool   `json:"existed"`
}
