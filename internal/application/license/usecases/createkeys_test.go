package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgate/internal/application/license/dto"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/id"
	"modgate/internal/shared/logger"
)

func TestCreateKeysSingle(t *testing.T) {
	keys := newFakeKeyRepo()
	uc := NewCreateKeysUseCase(keys, nil, id.DefaultKeyLength, time.Second, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateKeysRequest{
		DurationHours: 24,
		Metadata:      map[string]any{"batch": "launch"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Keys, 1)

	key := resp.Keys[0]
	assert.NoError(t, id.ValidateLicenseKeyID(key.KeyID))
	assert.Equal(t, "unused", key.Status)
	assert.Equal(t, 24, key.DurationHours)
	assert.Equal(t, "launch", key.Metadata["batch"])

	stored, err := keys.GetByKeyID(context.Background(), key.KeyID)
	require.NoError(t, err)
	assert.False(t, stored.IsUsed())
}

func TestCreateKeysBatchUnique(t *testing.T) {
	keys := newFakeKeyRepo()
	uc := NewCreateKeysUseCase(keys, nil, id.DefaultKeyLength, time.Second, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateKeysRequest{
		DurationHours: 1,
		Count:         10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Keys, 10)

	seen := make(map[string]bool)
	for _, key := range resp.Keys {
		assert.False(t, seen[key.KeyID], "duplicate key %s", key.KeyID)
		seen[key.KeyID] = true
	}
}

func TestCreateKeysValidation(t *testing.T) {
	uc := NewCreateKeysUseCase(newFakeKeyRepo(), nil, id.DefaultKeyLength, time.Second, logger.NewLogger())

	for _, hours := range []int{0, -1, 8761} {
		_, err := uc.Execute(context.Background(), dto.CreateKeysRequest{DurationHours: hours})
		require.Error(t, err, "hours %d", hours)
		assert.Equal(t, apperrors.ErrorTypeValidation, errType(t, err))
	}

	_, err := uc.Execute(context.Background(), dto.CreateKeysRequest{DurationHours: 1, Count: 101})
	assert.Equal(t, apperrors.ErrorTypeValidation, errType(t, err))
}

func TestCreateKeysEmailDeliveryBestEffort(t *testing.T) {
	sender := &fakeSender{}
	uc := NewCreateKeysUseCase(newFakeKeyRepo(), sender, id.DefaultKeyLength, time.Second, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateKeysRequest{
		DurationHours: 24,
		Email:         "alice@example.com",
	})
	require.NoError(t, err)
	assert.Len(t, sender.sent, 1)

	// A delivery failure does not fail minting.
	sender.err = assert.AnError
	resp, err = uc.Execute(context.Background(), dto.CreateKeysRequest{
		DurationHours: 24,
		Email:         "alice@example.com",
	})
	require.NoError(t, err)
	require.Len(t, resp.Keys, 1)
}

func TestRevokeSessionIdempotent(t *testing.T) {
	sessions := newFakeSessionRepo()
	uc := NewRevokeSessionUseCase(sessions, time.Second, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.AccountID)
	assert.False(t, resp.Existed)
}
