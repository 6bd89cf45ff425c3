// Package license provides domain models and business logic for the
// entitlement lifecycle: single-use license keys, per-account sessions, and
// the rules governing redemption.
package license

// KeyStatus represents the consumption state of a license key.
type KeyStatus string

const (
	// KeyStatusUnused marks a key that has never been redeemed.
	KeyStatusUnused KeyStatus = "unused"
	// KeyStatusUsed marks a key that has been consumed. A key enters this
	// state at most once.
	KeyStatusUsed KeyStatus = "used"
)

// IsValid checks if the key status is valid
func (s KeyStatus) IsValid() bool {
	switch s {
	case KeyStatusUnused, KeyStatusUsed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the key status
func (s KeyStatus) String() string {
	return string(s)
}
