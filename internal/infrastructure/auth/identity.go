package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	// httpClientTimeout is the timeout for HTTP requests to the identity
	// provider.
	httpClientTimeout = 30 * time.Second

	googleUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
)

// Supported identity token types.
const (
	TokenTypeAccessToken = "access_token"
	TokenTypeIDToken     = "id_token"
)

// ErrIdentityVerification is returned when the identity provider rejects a
// bearer credential or attests an unverified account.
var ErrIdentityVerification = errors.New("identity verification failed")

// IdentityVerifier authenticates an opaque bearer credential to a verified
// account identifier. The authorization engine consumes this as a black box.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string, tokenType string) (accountID string, err error)
}

// GoogleIdentityVerifierConfig holds settings for the Google verifier.
type GoogleIdentityVerifierConfig struct {
	// ClientID is the expected audience for ID tokens.
	ClientID string
}

// GoogleIdentityVerifier verifies Google OAuth credentials. Access tokens
// are checked against the userinfo endpoint; ID tokens against the
// tokeninfo endpoint with an audience check.
type GoogleIdentityVerifier struct {
	config GoogleIdentityVerifierConfig
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type googleTokenInfo struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Expiry        string `json:"exp"`
}

func NewGoogleIdentityVerifier(cfg GoogleIdentityVerifierConfig) *GoogleIdentityVerifier {
	return &GoogleIdentityVerifier{config: cfg}
}

// Verify authenticates the bearer credential and returns the verified
// account email. Failures of every kind collapse to ErrIdentityVerification
// with detail; the caller cannot obtain access with an unverified account.
func (v *GoogleIdentityVerifier) Verify(ctx context.Context, token string, tokenType string) (string, error) {
	switch tokenType {
	case TokenTypeAccessToken, "":
		return v.verifyAccessToken(ctx, token)
	case TokenTypeIDToken:
		return v.verifyIDToken(ctx, token)
	default:
		return "", fmt.Errorf("%w: unsupported token type %q", ErrIdentityVerification, tokenType)
	}
}

func (v *GoogleIdentityVerifier) verifyAccessToken(ctx context.Context, accessToken string) (string, error) {
	httpCtx, cancel := context.WithTimeout(ctx, httpClientTimeout)
	defer cancel()

	// The oauth2 transport attaches the bearer token to every request.
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(httpCtx, src)

	req, err := http.NewRequestWithContext(httpCtx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentityVerification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: userinfo status %d: %s", ErrIdentityVerification, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("failed to unmarshal user info: %w", err)
	}

	if info.Email == "" {
		return "", fmt.Errorf("%w: no email in attestation", ErrIdentityVerification)
	}
	if !info.VerifiedEmail {
		return "", fmt.Errorf("%w: email not verified", ErrIdentityVerification)
	}

	return info.Email, nil
}

func (v *GoogleIdentityVerifier) verifyIDToken(ctx context.Context, idToken string) (string, error) {
	httpCtx, cancel := context.WithTimeout(ctx, httpClientTimeout)
	defer cancel()

	endpoint := googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(httpCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{Timeout: httpClientTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentityVerification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: tokeninfo status %d: %s", ErrIdentityVerification, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var info googleTokenInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("failed to unmarshal token info: %w", err)
	}

	if v.config.ClientID != "" && info.Audience != v.config.ClientID {
		return "", fmt.Errorf("%w: token audience mismatch", ErrIdentityVerification)
	}
	if info.Email == "" {
		return "", fmt.Errorf("%w: no email in attestation", ErrIdentityVerification)
	}
	if info.EmailVerified != "true" {
		return "", fmt.Errorf("%w: email not verified", ErrIdentityVerification)
	}

	return info.Email, nil
}
