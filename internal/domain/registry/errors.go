package registry

import "errors"

var (
	// ErrEntryNotFound is returned when a registry entry is not found
	ErrEntryNotFound = errors.New("file entry not found")

	// ErrNameRequired is returned when a file name is missing
	ErrNameRequired = errors.New("file name is required")

	// ErrLocatorRequired is returned when a retrieval locator is missing
	ErrLocatorRequired = errors.New("retrieval locator is required")
)
