package license

import "errors"

var (
	// ErrKeyNotFound is returned when a license key is not found
	ErrKeyNotFound = errors.New("license key not found")

	// ErrKeyAlreadyUsed is returned when a license key has already been consumed
	ErrKeyAlreadyUsed = errors.New("license key already used")

	// ErrSessionNotFound is returned when no session exists for an account
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidDuration is returned when a key duration is not a positive hour count
	ErrInvalidDuration = errors.New("duration must be a positive number of hours")

	// ErrInvalidAccountID is returned when an account identifier is empty or unusable
	ErrInvalidAccountID = errors.New("invalid account identifier")
)
