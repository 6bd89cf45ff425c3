package errors

import "net/http"

// Licensing and credential error types. Every external-collaborator failure
// mode maps onto exactly one of these kinds; nothing is reported as a
// catch-all.
const (
	ErrorTypeIdentityVerificationFailed ErrorType = "identity_verification_failed"
	ErrorTypeKeyRequired                ErrorType = "key_required"
	ErrorTypeInvalidKey                 ErrorType = "invalid_key"
	ErrorTypeKeyAlreadyUsed             ErrorType = "key_already_used"
	ErrorTypeResourceNotFound           ErrorType = "resource_not_found"
	ErrorTypeMalformedToken             ErrorType = "malformed_token"
	ErrorTypeMalformedTimestamp         ErrorType = "malformed_timestamp"
	ErrorTypeTokenExpired               ErrorType = "token_expired"
	ErrorTypeBadSignature               ErrorType = "bad_signature"
	ErrorTypeStoreUnavailable           ErrorType = "store_unavailable"
	ErrorTypeStoreTimeout               ErrorType = "store_timeout"
)

// NewIdentityVerificationFailedError reports a bad, expired, or unverified
// external identity credential. Not retryable without a fresh credential.
func NewIdentityVerificationFailedError(details ...string) *AppError {
	return newAppError(ErrorTypeIdentityVerificationFailed,
		"identity verification failed", http.StatusForbidden, details...)
}

// NewKeyRequiredError reports that no active session exists and no license
// key was supplied. Distinguishable so a caller knows to prompt for a key.
func NewKeyRequiredError() *AppError {
	return newAppError(ErrorTypeKeyRequired,
		"no active session; a license key is required", http.StatusUnauthorized)
}

// NewInvalidKeyError reports an unknown license key.
func NewInvalidKeyError() *AppError {
	return newAppError(ErrorTypeInvalidKey,
		"invalid license key", http.StatusForbidden)
}

// NewKeyAlreadyUsedError reports a license key that has already been consumed.
func NewKeyAlreadyUsedError() *AppError {
	return newAppError(ErrorTypeKeyAlreadyUsed,
		"license key has already been used", http.StatusForbidden)
}

// NewResourceNotFoundError reports a requested file that is not registered,
// even when identity and session checks succeeded.
func NewResourceNotFoundError(name string) *AppError {
	return newAppError(ErrorTypeResourceNotFound,
		"requested resource not found", http.StatusNotFound, name)
}

// NewMalformedTokenError reports a session credential with the wrong shape.
func NewMalformedTokenError(details ...string) *AppError {
	return newAppError(ErrorTypeMalformedToken,
		"malformed session token", http.StatusForbidden, details...)
}

// NewMalformedTimestampError reports an unparseable expiry field.
func NewMalformedTimestampError(details ...string) *AppError {
	return newAppError(ErrorTypeMalformedTimestamp,
		"malformed expiry timestamp in session token", http.StatusForbidden, details...)
}

// NewTokenExpiredError reports a session credential past its embedded expiry.
func NewTokenExpiredError() *AppError {
	return newAppError(ErrorTypeTokenExpired,
		"session token has expired", http.StatusForbidden)
}

// NewBadSignatureError reports an authentication tag mismatch.
func NewBadSignatureError() *AppError {
	return newAppError(ErrorTypeBadSignature,
		"invalid session token signature", http.StatusForbidden)
}

// NewStoreUnavailableError reports entitlement store failure. Safe to retry
// the whole operation.
func NewStoreUnavailableError(details ...string) *AppError {
	return newAppError(ErrorTypeStoreUnavailable,
		"entitlement store unavailable", http.StatusServiceUnavailable, details...)
}

// NewStoreTimeoutError reports an entitlement store call that exceeded its
// bounded timeout. Safe to retry the whole operation.
func NewStoreTimeoutError(details ...string) *AppError {
	return newAppError(ErrorTypeStoreTimeout,
		"entitlement store timed out", http.StatusServiceUnavailable, details...)
}
