package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentStore holds the uploaded source PDFs, one write-once file per
// company identifier. Documents are kept after extraction so a snapshot can
// always be traced back to its source.
type DocumentStore struct {
	dir string
}

// NewDocumentStore creates a document store rooted at dir. The directory is
// created lazily on first save.
func NewDocumentStore(dir string) *DocumentStore {
	return &DocumentStore{dir: dir}
}

// Save writes the PDF bytes for id. Each identifier is written exactly once;
// a second write for the same identifier is an error.
func (s *DocumentStore) Save(id string, pdf []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	path := s.Path(id)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("document already stored for %s", id)
		}
		return fmt.Errorf("failed to create document: %w", err)
	}
	if _, err := f.Write(pdf); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close document: %w", err)
	}
	return nil
}

// Read returns the stored PDF bytes for id, or *NotFoundError.
func (s *DocumentStore) Read(id string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// Path returns the on-disk location of the document for id.
func (s *DocumentStore) Path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+".pdf")
}
