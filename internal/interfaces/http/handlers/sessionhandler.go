package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"modgate/internal/application/license/dto"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// VerifySessionExecutor validates a session credential.
type VerifySessionExecutor interface {
	Execute(ctx context.Context, request dto.VerifySessionRequest) (*dto.VerifySessionResponse, error)
}

// SessionHandler handles session credential verification.
type SessionHandler struct {
	verifyUC VerifySessionExecutor
	logger   logger.Interface
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(verifyUC VerifySessionExecutor, logger logger.Interface) *SessionHandler {
	return &SessionHandler{
		verifyUC: verifyUC,
		logger:   logger,
	}
}

// VerifySession handles POST /api/verify_session
func (h *SessionHandler) VerifySession(c *gin.Context) {
	var request dto.VerifySessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "session_token is required")
		return
	}

	response, err := h.verifyUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}
