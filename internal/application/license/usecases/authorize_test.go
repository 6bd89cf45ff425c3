package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgate/internal/application/license/dto"
	"modgate/internal/domain/license"
	"modgate/internal/domain/registry"
	"modgate/internal/infrastructure/auth"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/biztime"
	"modgate/internal/shared/logger"
)

type authorizeFixture struct {
	identity *fakeIdentity
	keys     *fakeKeyRepo
	sessions *fakeSessionRepo
	files    *fakeFileRepo
	tokens   *auth.SessionTokenService
	uc       *AuthorizeUseCase
}

func newAuthorizeFixture(account string) *authorizeFixture {
	f := &authorizeFixture{
		identity: &fakeIdentity{account: account},
		keys:     newFakeKeyRepo(),
		sessions: newFakeSessionRepo(),
		files:    newFakeFileRepo(),
		tokens:   auth.NewSessionTokenService("test-secret"),
	}
	f.uc = NewAuthorizeUseCase(
		f.identity, f.keys, f.sessions, f.files,
		f.tokens, fakeTxManager{}, time.Second, logger.NewLogger(),
	)
	return f
}

func (f *authorizeFixture) addKey(t *testing.T, keyID string, hours int) *license.Key {
	t.Helper()
	key, err := license.NewKey(keyID, hours)
	require.NoError(t, err)
	require.NoError(t, f.keys.Create(context.Background(), key))
	return key
}

func errType(t *testing.T, err error) apperrors.ErrorType {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Type
}

func TestAuthorizeRedeemsKeyForNewAccount(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")
	f.addKey(t, "mk_key0000000000000001", 24)

	resp, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", resp.AccountID)
	assert.True(t, resp.KeyRedeemed)
	assert.InDelta(t, 24.0, resp.HoursRemaining, 0.01)

	// The credential verifies offline and binds the account and expiry.
	account, expiry, err := f.tokens.Verify(resp.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account)
	assert.Equal(t, resp.ExpiresAt, biztime.FormatExpiry(expiry))

	// The key is consumed and attributed.
	key, err := f.keys.GetByKeyID(context.Background(), "mk_key0000000000000001")
	require.NoError(t, err)
	assert.True(t, key.IsUsed())
	assert.Equal(t, "alice@example.com", key.RedeemedBy())

	// A session row exists.
	session, err := f.sessions.GetByAccount(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.False(t, session.IsExpired(biztime.NowUTC()))
}

func TestAuthorizeReusesActiveSessionWithoutConsumingKey(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")
	f.addKey(t, "mk_key0000000000000001", 24)

	expiry := biztime.NowUTC().Add(10 * time.Hour)
	session, err := license.NewSession("alice@example.com", expiry)
	require.NoError(t, err)
	require.NoError(t, f.sessions.Upsert(context.Background(), session))

	resp, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
	})
	require.NoError(t, err)

	assert.False(t, resp.KeyRedeemed)
	assert.InDelta(t, 10.0, resp.HoursRemaining, 0.01)

	// The supplied key stays unused for later.
	key, err := f.keys.GetByKeyID(context.Background(), "mk_key0000000000000001")
	require.NoError(t, err)
	assert.False(t, key.IsUsed())
}

func TestAuthorizeRequiresKeyWhenNoSession(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
	})
	assert.Equal(t, apperrors.ErrorTypeKeyRequired, errType(t, err))
}

func TestAuthorizeRejectsUnknownKey(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_doesnotexist00000000",
	})
	assert.Equal(t, apperrors.ErrorTypeInvalidKey, errType(t, err))
}

func TestAuthorizeRejectsUsedKey(t *testing.T) {
	f := newAuthorizeFixture("bob@example.com")
	key := f.addKey(t, "mk_key0000000000000001", 24)
	require.NoError(t, f.keys.Redeem(context.Background(), key.KeyID(), "alice@example.com", biztime.NowUTC()))

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    key.KeyID(),
	})
	assert.Equal(t, apperrors.ErrorTypeKeyAlreadyUsed, errType(t, err))
}

func TestAuthorizeLazilyDeletesExpiredSession(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")

	expired, err := license.NewSession("alice@example.com", biztime.NowUTC().Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.sessions.Upsert(context.Background(), expired))

	// Without a key the expired session is gone and the gate reports
	// key_required.
	_, err = f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
	})
	assert.Equal(t, apperrors.ErrorTypeKeyRequired, errType(t, err))

	_, err = f.sessions.GetByAccount(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, license.ErrSessionNotFound)

	// With a key the same request opens a fresh session.
	f.addKey(t, "mk_key0000000000000002", 6)
	resp, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000002",
	})
	require.NoError(t, err)
	assert.True(t, resp.KeyRedeemed)
	assert.InDelta(t, 6.0, resp.HoursRemaining, 0.01)
}

func TestAuthorizeIdentityFailure(t *testing.T) {
	f := newAuthorizeFixture("")
	f.identity.err = errors.New("provider rejected token")

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "bad-token",
	})
	assert.Equal(t, apperrors.ErrorTypeIdentityVerificationFailed, errType(t, err))
}

func TestAuthorizeRejectsUnusableAccountID(t *testing.T) {
	// The provider attests an identifier the credential format cannot
	// carry; the engine refuses rather than issuing an ambiguous token.
	f := newAuthorizeFixture("alice:evil@example.com")

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
	})
	assert.Equal(t, apperrors.ErrorTypeIdentityVerificationFailed, errType(t, err))
}

func TestAuthorizeUnknownFileDoesNotConsumeKey(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")
	f.addKey(t, "mk_key0000000000000001", 24)

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
		FileName:      "ghost",
	})
	assert.Equal(t, apperrors.ErrorTypeResourceNotFound, errType(t, err))

	key, err := f.keys.GetByKeyID(context.Background(), "mk_key0000000000000001")
	require.NoError(t, err)
	assert.False(t, key.IsUsed(), "unknown file must not waste the key")
}

func TestAuthorizeResolvesFileGrant(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")
	f.addKey(t, "mk_key0000000000000001", 24)

	entry, err := registry.NewFileEntry("toolkit", "https://cdn.example.com/toolkit-1.0.zip", "")
	require.NoError(t, err)
	require.NoError(t, f.files.Upsert(context.Background(), entry))

	resp, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
		FileName:      "toolkit",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.File)
	assert.Equal(t, "toolkit", resp.File.Name)
	assert.Equal(t, "https://cdn.example.com/toolkit-1.0.zip", resp.File.Locator)
}

func TestAuthorizeNormalizesAccountID(t *testing.T) {
	f := newAuthorizeFixture("Alice@Example.COM")
	f.addKey(t, "mk_key0000000000000001", 24)

	resp, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.AccountID)

	_, err = f.sessions.GetByAccount(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}

func TestAuthorizeStoreFailureIsRetryable(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")
	f.sessions.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
	})
	assert.Equal(t, apperrors.ErrorTypeStoreUnavailable, errType(t, err))
}

func TestAuthorizeStoreTimeoutIsDistinguished(t *testing.T) {
	f := newAuthorizeFixture("alice@example.com")
	f.sessions.err = fmt.Errorf("query canceled: %w", context.DeadlineExceeded)

	_, err := f.uc.Execute(context.Background(), dto.AuthorizeRequest{
		IdentityToken: "google-token",
		LicenseKey:    "mk_key0000000000000001",
	})
	assert.Equal(t, apperrors.ErrorTypeStoreTimeout, errType(t, err))
}

// Concurrent redemption of one key by many accounts must produce exactly
// one winner; every loser sees the key as already used.
func TestAuthorizeConcurrentRedemptionSingleWinner(t *testing.T) {
	const goroutines = 32

	keys := newFakeKeyRepo()
	sessions := newFakeSessionRepo()
	files := newFakeFileRepo()
	tokens := auth.NewSessionTokenService("test-secret")

	key, err := license.NewKey("mk_contested0000000001", 24)
	require.NoError(t, err)
	require.NoError(t, keys.Create(context.Background(), key))

	var wg sync.WaitGroup
	successes := make([]*dto.AuthorizeResponse, goroutines)
	failures := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			identity := &fakeIdentity{account: fmt.Sprintf("user%d@example.com", n)}
			uc := NewAuthorizeUseCase(
				identity, keys, sessions, files,
				tokens, fakeTxManager{}, time.Second, logger.NewLogger(),
			)
			resp, err := uc.Execute(context.Background(), dto.AuthorizeRequest{
				IdentityToken: "google-token",
				LicenseKey:    "mk_contested0000000001",
			})
			successes[n] = resp
			failures[n] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < goroutines; i++ {
		if failures[i] == nil {
			winners++
			assert.True(t, successes[i].KeyRedeemed)
		} else {
			assert.Equal(t, apperrors.ErrorTypeKeyAlreadyUsed, errType(t, failures[i]))
		}
	}
	assert.Equal(t, 1, winners, "exactly one redemption must win")

	got, err := keys.GetByKeyID(context.Background(), "mk_contested0000000001")
	require.NoError(t, err)
	assert.True(t, got.IsUsed())
}
