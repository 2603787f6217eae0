// Package store persists and retrieves immutable company snapshots, keyed by
// company identifier.
package store

import (
	"context"
	"fmt"

	"github.com/feldges/data-extractor/internal/company"
)

// Entry is one listing row: the extracted display name and the identifier.
type Entry struct {
	Name string `json:"name"`
	ID   string `json:"company_id"`
}

// Store is the snapshot store contract. Identifiers are always freshly
// minted, so Save never races with another writer on the same key.
type Store interface {
	// Save durably writes the record keyed by company.ID, creating any
	// needed storage location lazily.
	Save(ctx context.Context, c *company.Company) error
	// Load retrieves a snapshot, or *NotFoundError.
	Load(ctx context.Context, id string) (*company.Company, error)
	// List returns (display name, identifier) pairs for every persisted
	// record, sorted by display name.
	List(ctx context.Context) ([]Entry, error)
	// Exists reports whether a snapshot is persisted for the identifier.
	Exists(ctx context.Context, id string) (bool, error)
	// Close releases underlying resources.
	Close() error
}

// NotFoundError indicates no snapshot exists for the identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("company not found: %s", e.ID)
}
