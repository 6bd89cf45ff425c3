package dto

import "time"

// UpsertFileRequest creates or replaces a registry entry.
type UpsertFileRequest struct {
	Name    string `json:"name" binding:"required"`
	Locator string `json:"locator" binding:"required"`
	Notes   string `json:"notes,omitempty"`
}

// FileEntryResponse represents a single registry entry.
type FileEntryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Locator   string    `json:"locator"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilesResponse returns all registry entries ordered by name.
type ListFilesResponse struct {
	Files []*FileEntryResponse `json:"files"`
}

// DeleteFileResponse reports the outcome of a registry deletion.
type DeleteFileResponse struct {
	Name    string `json:"name"`
	Existed bool   `json:"existed"`
}

// RenderNotesResponse carries an entry's release notes rendered to
// sanitized HTML.
type RenderNotesResponse struct {
	Name string `json:"name"`
	HTML string `json:"html"`
}
