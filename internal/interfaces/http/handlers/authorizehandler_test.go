package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgate/internal/application/license/dto"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/logger"
)

type mockAuthorizeUC struct {
	response *dto.AuthorizeResponse
	err      error
	lastReq  dto.AuthorizeRequest
}

func (m *mockAuthorizeUC) Execute(_ context.Context, request dto.AuthorizeRequest) (*dto.AuthorizeResponse, error) {
	m.lastReq = request
	return m.response, m.err
}

type mockStatusUC struct {
	response *dto.StatusResponse
	err      error
}

func (m *mockStatusUC) Execute(_ context.Context, _ dto.StatusRequest) (*dto.StatusResponse, error) {
	return m.response, m.err
}

type mockVerifyUC struct {
	response *dto.VerifySessionResponse
	err      error
}

func (m *mockVerifyUC) Execute(_ context.Context, _ dto.VerifySessionRequest) (*dto.VerifySessionResponse, error) {
	return m.response, m.err
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthorizeHandlerSuccess(t *testing.T) {
	authorizeUC := &mockAuthorizeUC{
		response: &dto.AuthorizeResponse{
			AccountID:      "alice@example.com",
			SessionToken:   "alice@example.com:2030-01-01T00:00:00Z:0123456789abcdef",
			ExpiresAt:      "2030-01-01T00:00:00Z",
			HoursRemaining: 24,
			KeyRedeemed:    true,
		},
	}
	handler := NewAuthorizeHandler(authorizeUC, &mockStatusUC{}, logger.NewLogger())

	engine := newTestEngine()
	engine.POST("/api/authorize", handler.Authorize)

	w := performJSON(t, engine, http.MethodPost, "/api/authorize", gin.H{
		"identity_token": "google-token",
		"license_key":    "mk_key0000000000000001",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mk_key0000000000000001", authorizeUC.lastReq.LicenseKey)

	var body struct {
		Success bool                  `json:"success"`
		Data    dto.AuthorizeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.KeyRedeemed)
	assert.Equal(t, "alice@example.com", body.Data.AccountID)
}

func TestAuthorizeHandlerMissingIdentityToken(t *testing.T) {
	handler := NewAuthorizeHandler(&mockAuthorizeUC{}, &mockStatusUC{}, logger.NewLogger())

	engine := newTestEngine()
	engine.POST("/api/authorize", handler.Authorize)

	w := performJSON(t, engine, http.MethodPost, "/api/authorize", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthorizeHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"key required", apperrors.NewKeyRequiredError(), http.StatusUnauthorized, "key_required"},
		{"invalid key", apperrors.NewInvalidKeyError(), http.StatusForbidden, "invalid_key"},
		{"key already used", apperrors.NewKeyAlreadyUsedError(), http.StatusForbidden, "key_already_used"},
		{"identity", apperrors.NewIdentityVerificationFailedError(), http.StatusForbidden, "identity_verification_failed"},
		{"resource", apperrors.NewResourceNotFoundError("toolkit"), http.StatusNotFound, "resource_not_found"},
		{"store down", apperrors.NewStoreUnavailableError(), http.StatusServiceUnavailable, "store_unavailable"},
		{"store timeout", apperrors.NewStoreTimeoutError(), http.StatusServiceUnavailable, "store_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthorizeHandler(&mockAuthorizeUC{err: tt.err}, &mockStatusUC{}, logger.NewLogger())

			engine := newTestEngine()
			engine.POST("/api/authorize", handler.Authorize)

			w := performJSON(t, engine, http.MethodPost, "/api/authorize", gin.H{
				"identity_token": "google-token",
			})

			assert.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Type string `json:"type"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantType, body.Error.Type)
		})
	}
}

func TestVerifySessionHandler(t *testing.T) {
	verifyUC := &mockVerifyUC{
		response: &dto.VerifySessionResponse{
			Valid:          true,
			AccountID:      "alice@example.com",
			ExpiresAt:      "2030-01-01T00:00:00Z",
			HoursRemaining: 12,
		},
	}
	handler := NewSessionHandler(verifyUC, logger.NewLogger())

	engine := newTestEngine()
	engine.POST("/api/verify_session", handler.VerifySession)

	w := performJSON(t, engine, http.MethodPost, "/api/verify_session", gin.H{
		"session_token": "alice@example.com:2030-01-01T00:00:00Z:0123456789abcdef",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// A bad signature surfaces as 403 with its own error kind.
	handler = NewSessionHandler(&mockVerifyUC{err: apperrors.NewBadSignatureError()}, logger.NewLogger())
	engine = newTestEngine()
	engine.POST("/api/verify_session", handler.VerifySession)

	w = performJSON(t, engine, http.MethodPost, "/api/verify_session", gin.H{
		"session_token": "tampered",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "bad_signature")
}
