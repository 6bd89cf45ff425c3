// Package registry provides the file registry domain: the mapping from
// module names to retrieval locators handed out with authorization grants.
package registry

import "time"

// FileEntry maps a distributable module name to its retrieval locator.
// Notes hold optional release notes in markdown.
type FileEntry struct {
	ID        uint
	Name      string
	Locator   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFileEntry creates a registry entry.
func NewFileEntry(name, locator, notes string) (*FileEntry, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if locator == "" {
		return nil, ErrLocatorRequired
	}

	now := time.Now().UTC()
	return &FileEntry{
		Name:      name,
		Locator:   locator,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
