package license

import (
	"fmt"
	"time"
)

// Key represents the license key aggregate root. A key grants a fixed
// entitlement duration and may be consumed at most once.
type Key struct {
	id            uint
	keyID         string
	status        KeyStatus
	durationHours int
	metadata      map[string]any
	redeemedBy    string
	redeemedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewKey creates a new unused license key.
func NewKey(keyID string, durationHours int) (*Key, error) {
	if keyID == "" {
		return nil, fmt.Errorf("key ID is required")
	}
	if durationHours <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now().UTC()
	return &Key{
		keyID:         keyID,
		status:        KeyStatusUnused,
		durationHours: durationHours,
		metadata:      make(map[string]any),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructKey reconstructs a license key from persistence.
func ReconstructKey(
	id uint,
	keyID string,
	status KeyStatus,
	durationHours int,
	metadata map[string]any,
	redeemedBy string,
	redeemedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Key, error) {
	if id == 0 {
		return nil, fmt.Errorf("key ID cannot be zero")
	}
	if keyID == "" {
		return nil, fmt.Errorf("key identifier is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid key status: %s", status)
	}
	if durationHours <= 0 {
		return nil, ErrInvalidDuration
	}

	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Key{
		id:            id,
		keyID:         keyID,
		status:        status,
		durationHours: durationHours,
		metadata:      metadata,
		redeemedBy:    redeemedBy,
		redeemedAt:    redeemedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID returns the surrogate identifier assigned by persistence.
func (k *Key) ID() uint {
	return k.id
}

// KeyID returns the opaque key identifier handed to users.
func (k *Key) KeyID() string {
	return k.keyID
}

// Status returns the consumption state.
func (k *Key) Status() KeyStatus {
	return k.status
}

// DurationHours returns the entitlement duration granted on redemption.
func (k *Key) DurationHours() int {
	return k.durationHours
}

// Duration returns the entitlement duration as a time.Duration.
func (k *Key) Duration() time.Duration {
	return time.Duration(k.durationHours) * time.Hour
}

// Metadata returns the key metadata.
func (k *Key) Metadata() map[string]any {
	return k.metadata
}

// RedeemedBy returns the account that consumed the key, if any.
func (k *Key) RedeemedBy() string {
	return k.redeemedBy
}

// RedeemedAt returns when the key was consumed, if it has been.
func (k *Key) RedeemedAt() *time.Time {
	return k.redeemedAt
}

// CreatedAt returns when the key was created.
func (k *Key) CreatedAt() time.Time {
	return k.createdAt
}

// UpdatedAt returns when the key was last updated.
func (k *Key) UpdatedAt() time.Time {
	return k.updatedAt
}

// SetID sets the surrogate identifier (only for persistence layer use).
func (k *Key) SetID(id uint) error {
	if k.id != 0 {
		return fmt.Errorf("key ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("key ID cannot be zero")
	}
	k.id = id
	return nil
}

// SetMetadata sets a metadata value.
func (k *Key) SetMetadata(key string, value any) {
	if k.metadata == nil {
		k.metadata = make(map[string]any)
	}
	k.metadata[key] = value
	k.updatedAt = time.Now().UTC()
}

// Redeem marks the key as consumed by the given account. The unused→used
// transition happens at most once; a second call fails.
func (k *Key) Redeem(accountID string, at time.Time) error {
	if accountID == "" {
		return ErrInvalidAccountID
	}
	if k.status == KeyStatusUsed {
		return ErrKeyAlreadyUsed
	}

	at = at.UTC()
	k.status = KeyStatusUsed
	k.redeemedBy = accountID
	k.redeemedAt = &at
	k.updatedAt = at
	return nil
}

// IsUsed reports whether the key has been consumed.
func (k *Key) IsUsed() bool {
	return k.status == KeyStatusUsed
}
