package usecases

import (
	"context"
	"errors"
	"time"

	"modgate/internal/application/registry/dto"
	"modgate/internal/domain/registry"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/services/markdown"
)

// RenderNotesUseCase renders an entry's markdown release notes to sanitized
// HTML for display.
type RenderNotesUseCase struct {
	files        registry.Repository
	markdown     markdown.Service
	storeTimeout time.Duration
	logger       logger.Interface
}

// NewRenderNotesUseCase creates a new render notes use case.
func NewRenderNotesUseCase(
	files registry.Repository,
	markdownService markdown.Service,
	storeTimeout time.Duration,
	logger logger.Interface,
) *RenderNotesUseCase {
	return &RenderNotesUseCase{
		files:        files,
		markdown:     markdownService,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute renders the notes for the named entry.
func (uc *RenderNotesUseCase) Execute(ctx context.Context, name string) (*dto.RenderNotesResponse, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("file name is required")
	}

	sctx, cancel := storeContext(ctx, uc.storeTimeout)
	defer cancel()

	entry, err := uc.files.GetByName(sctx, name)
	if err != nil {
		if errors.Is(err, registry.ErrEntryNotFound) {
			return nil, apperrors.NewResourceNotFoundError(name)
		}
		uc.logger.Errorw("failed to load file entry", "name", name, "error", err)
		return nil, mapStoreError(err)
	}

	html, err := uc.markdown.ToHTMLSanitized(entry.Notes)
	if err != nil {
		uc.logger.Errorw("failed to render notes", "name", name, "error", err)
		return nil, apperrors.NewInternalError("failed to render notes")
	}

	return &dto.RenderNotesResponse{Name: name, HTML: html}, nil
}
