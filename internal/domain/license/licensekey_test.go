package license

import (
	"testing"
	"time"
)

func TestNewKey(t *testing.T) {
	key, err := NewKey("mk_abc123", 24)
	if err != nil {
		t.Fatalf("NewKey() error = %v", err)
	}
	if key.Status() != KeyStatusUnused {
		t.Errorf("new key status = %v, want unused", key.Status())
	}
	if key.DurationHours() != 24 {
		t.Errorf("duration = %d, want 24", key.DurationHours())
	}
	if key.Duration() != 24*time.Hour {
		t.Errorf("Duration() = %v, want 24h", key.Duration())
	}
}

func TestNewKeyInvalid(t *testing.T) {
	if _, err := NewKey("", 24); err == nil {
		t.Error("NewKey with empty ID expected error")
	}
	if _, err := NewKey("mk_abc", 0); err != ErrInvalidDuration {
		t.Errorf("NewKey with zero duration error = %v, want ErrInvalidDuration", err)
	}
	if _, err := NewKey("mk_abc", -5); err != ErrInvalidDuration {
		t.Errorf("NewKey with negative duration error = %v, want ErrInvalidDuration", err)
	}
}

func TestKeyRedeemOnce(t *testing.T) {
	key, err := NewKey("mk_abc123", 24)
	if err != nil {
		t.Fatalf("NewKey() error = %v", err)
	}

	now := time.Now().UTC()
	if err := key.Redeem("user@example.com", now); err != nil {
		t.Fatalf("first Redeem() error = %v", err)
	}
	if !key.IsUsed() {
		t.Error("key should be used after redemption")
	}
	if key.RedeemedBy() != "user@example.com" {
		t.Errorf("RedeemedBy() = %q", key.RedeemedBy())
	}
	if key.RedeemedAt() == nil || !key.RedeemedAt().Equal(now) {
		t.Errorf("RedeemedAt() = %v, want %v", key.RedeemedAt(), now)
	}

	// The transition happens at most once.
	if err := key.Redeem("other@example.com", now); err != ErrKeyAlreadyUsed {
		t.Errorf("second Redeem() error = %v, want ErrKeyAlreadyUsed", err)
	}
	if key.RedeemedBy() != "user@example.com" {
		t.Error("second redemption must not overwrite the first redeemer")
	}
}

func TestKeyRedeemEmptyAccount(t *testing.T) {
	key, _ := NewKey("mk_abc123", 1)
	if err := key.Redeem("", time.Now()); err != ErrInvalidAccountID {
		t.Errorf("Redeem with empty account error = %v, want ErrInvalidAccountID", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	now := time.Now().UTC()
	session, err := NewSession("user@example.com", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if session.IsExpired(now) {
		t.Error("session should not be expired before its expiry")
	}
	if session.IsExpired(now.Add(time.Hour)) {
		t.Error("session should not be expired with an hour remaining")
	}
	// Expiry instant itself counts as expired.
	if !session.IsExpired(now.Add(2 * time.Hour)) {
		t.Error("session should be expired at its expiry instant")
	}
	if !session.IsExpired(now.Add(2*time.Hour + time.Nanosecond)) {
		t.Error("session should be expired just after its expiry")
	}

	if got := session.Remaining(now); got != 2*time.Hour {
		t.Errorf("Remaining() = %v, want 2h", got)
	}
	if got := session.Remaining(now.Add(3 * time.Hour)); got != 0 {
		t.Errorf("Remaining() after expiry = %v, want 0", got)
	}
}

func TestNewSessionInvalid(t *testing.T) {
	if _, err := NewSession("", time.Now()); err != ErrInvalidAccountID {
		t.Errorf("NewSession with empty account error = %v, want ErrInvalidAccountID", err)
	}
}
