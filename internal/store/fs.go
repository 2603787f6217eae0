package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/feldges/data-extractor/internal/company"
)

// FSStore persists one JSON file per company under a directory. Writes go
// through a temp file plus rename so readers never observe a partial
// snapshot.
type FSStore struct {
	dir string
}

// NewFSStore creates a filesystem-backed store rooted at dir. The directory
// is created lazily on first save.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

// Save writes the snapshot for c.ID.
func (s *FSStore) Save(_ context.Context, c *company.Company) error {
	if c.ID == "" {
		return fmt.Errorf("company ID is required")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode company: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, c.ID+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(c.ID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot for id.
func (s *FSStore) Load(_ context.Context, id string) (*company.Company, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var c company.Company
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}
	return &c, nil
}

// List enumerates every snapshot, sorted by display name.
func (s *FSStore) List(ctx context.Context) ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(f.Name(), ".json")
		c, err := s.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: c.DisplayName(), ID: id})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Exists reports whether a snapshot file is present for id.
func (s *FSStore) Exists(_ context.Context, id string) (bool, error) {
	_, err := os.Stat(s.path(id))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat snapshot: %w", err)
}

// Close is a no-op for the filesystem store.
func (s *FSStore) Close() error {
	return nil
}

func (s *FSStore) path(id string) string {
	// Identifiers are hex tokens minted in-process, but snapshots are
	// addressed by caller-supplied strings, so keep them inside the dir.
	return filepath.Join(s.dir, filepath.Base(id)+".json")
}
