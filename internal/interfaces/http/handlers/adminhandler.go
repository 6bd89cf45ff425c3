package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"modgate/internal/application/license/dto"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// CreateKeysExecutor mints license keys.
type CreateKeysExecutor interface {
	Execute(ctx context.Context, request dto.CreateKeysRequest) (*dto.CreateKeysResponse, error)
}

// ListKeysExecutor lists license keys.
type ListKeysExecutor interface {
	Execute(ctx context.Context) (*dto.ListKeysResponse, error)
}

// RevokeSessionExecutor removes an account's session.
type RevokeSessionExecutor interface {
	Execute(ctx context.Context, accountID string) (*dto.RevokeSessionResponse, error)
}

// PasswordVerifier checks the admin password against its stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// AdminTokenIssuer mints admin API tokens.
type AdminTokenIssuer interface {
	Generate() (token string, expiresIn int64, err error)
}

// AdminHandler handles the administrative API.
type AdminHandler struct {
	createKeysUC    CreateKeysExecutor
	listKeysUC      ListKeysExecutor
	revokeSessionUC RevokeSessionExecutor
	hasher          PasswordVerifier
	tokens          AdminTokenIssuer
	passwordHash    string
	logger          logger.Interface
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	createKeysUC CreateKeysExecutor,
	listKeysUC ListKeysExecutor,
	revokeSessionUC RevokeSessionExecutor,
	hasher PasswordVerifier,
	tokens AdminTokenIssuer,
	passwordHash string,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		createKeysUC:    createKeysUC,
		listKeysUC:      listKeysUC,
		revokeSessionUC: revokeSessionUC,
		hasher:          hasher,
		tokens:          tokens,
		passwordHash:    passwordHash,
		logger:          logger,
	}
}

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var request adminLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "password is required")
		return
	}

	if h.passwordHash == "" {
		h.logger.Warnw("admin login attempted but no password hash is configured")
		utils.ErrorResponse(c, http.StatusForbidden, "admin access is not configured")
		return
	}

	if err := h.hasher.Verify(request.Password, h.passwordHash); err != nil {
		h.logger.Warnw("admin login failed", "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresIn, err := h.tokens.Generate()
	if err != nil {
		h.logger.Errorw("failed to generate admin token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// CreateKeys handles POST /admin/keys
func (h *AdminHandler) CreateKeys(c *gin.Context) {
	var request dto.CreateKeysRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "duration_hours must be between 1 and 8760")
		return
	}

	response, err := h.createKeysUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response)
}

// ListKeys handles GET /admin/keys
func (h *AdminHandler) ListKeys(c *gin.Context) {
	response, err := h.listKeysUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// RevokeSession handles DELETE /admin/sessions/:account
func (h *AdminHandler) RevokeSession(c *gin.Context) {
	account := c.Param("account")
	if account == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "account is required")
		return
	}

	response, err := h.revokeSessionUC.Execute(c.Request.Context(), account)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}
