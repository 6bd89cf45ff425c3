package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"modgate/internal/application/registry/dto"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/utils"
)

// UpsertFileExecutor creates or replaces a registry entry.
type UpsertFileExecutor interface {
	Execute(ctx context.Context, request dto.UpsertFileRequest) (*dto.FileEntryResponse, error)
}

// ListFilesExecutor lists registry entries.
type ListFilesExecutor interface {
	Execute(ctx context.Context) (*dto.ListFilesResponse, error)
}

// DeleteFileExecutor removes a registry entry.
type DeleteFileExecutor interface {
	Execute(ctx context.Context, name string) (*dto.DeleteFileResponse, error)
}

// RenderNotesExecutor renders an entry's release notes.
type RenderNotesExecutor interface {
	Execute(ctx context.Context, name string) (*dto.RenderNotesResponse, error)
}

// FileHandler handles the file registry API.
type FileHandler struct {
	upsertUC      UpsertFileExecutor
	listUC        ListFilesExecutor
	deleteUC      DeleteFileExecutor
	renderNotesUC RenderNotesExecutor
	logger        logger.Interface
}

// NewFileHandler creates a new file handler.
func NewFileHandler(
	upsertUC UpsertFileExecutor,
	listUC ListFilesExecutor,
	deleteUC DeleteFileExecutor,
	renderNotesUC RenderNotesExecutor,
	logger logger.Interface,
) *FileHandler {
	return &FileHandler{
		upsertUC:      upsertUC,
		listUC:        listUC,
		deleteUC:      deleteUC,
		renderNotesUC: renderNotesUC,
		logger:        logger,
	}
}

// Upsert handles PUT /admin/files/:name
func (h *FileHandler) Upsert(c *gin.Context) {
	var request dto.UpsertFileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and locator are required")
		return
	}

	// The path is authoritative for the entry name.
	if name := c.Param("name"); name != "" {
		request.Name = name
	}

	response, err := h.upsertUC.Execute(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// List handles GET /admin/files
func (h *FileHandler) List(c *gin.Context) {
	response, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Delete handles DELETE /admin/files/:name
func (h *FileHandler) Delete(c *gin.Context) {
	response, err := h.deleteUC.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Notes handles GET /api/files/:name/notes
func (h *FileHandler) Notes(c *gin.Context) {
	response, err := h.renderNotesUC.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}
