package registry

import "context"

// Repository defines the interface for file registry persistence operations.
type Repository interface {
	// GetByName retrieves an entry by module name.
	// Returns ErrEntryNotFound when absent.
	GetByName(ctx context.Context, name string) (*FileEntry, error)

	// Upsert creates or replaces the entry for a module name.
	Upsert(ctx context.Context, entry *FileEntry) error

	// Delete removes an entry by name. Idempotent; reports whether a row
	// existed.
	Delete(ctx context.Context, name string) (bool, error)

	// List returns all entries ordered by name.
	List(ctx context.Context) ([]*FileEntry, error)
}
