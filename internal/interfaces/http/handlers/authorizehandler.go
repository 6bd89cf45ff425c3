package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"modgate/internal/application/license/dto"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// AuthorizeExecutor runs the authorization flow.
type AuthorizeExecutor interface {
	Execute(ctx context.Context, request dto.AuthorizeRequest) (*dto.AuthorizeResponse, error)
}

// StatusExecutor runs the read-only session status check.
type StatusExecutor interface {
	Execute(ctx context.Context, request dto.StatusRequest) (*dto.StatusResponse, error)
}

// AuthorizeHandler handles the public authorization surface.
type AuthorizeHandler struct {
	authorizeUC AuthorizeExecutor
	statusUC    StatusExecutor
	logger      logger.Interface
}

// NewAuthorizeHandler creates a new authorize handler.
func NewAuthorizeHandler(authorizeUC AuthorizeExecutor, statusUC StatusExecutor, logger logger.Interface) *AuthorizeHandler {
	return &AuthorizeHandler{
		authorizeUC: authorizeUC,
		statusUC:    statusUC,
		logger:      logger,
	}
}

// Authorize handles POST /api/authorize
func (h *AuthorizeHandler) Authorize(c *gin.Context) {
	var request dto.AuthorizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "identity_token is required")
		return
	}

	response, err := h.authorizeUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Status handles POST /api/status
func (h *AuthorizeHandler) Status(c *gin.Context) {
	var request dto.StatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "identity_token is required")
		return
	}

	response, err := h.statusUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}
