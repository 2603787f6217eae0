package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feldges/data-extractor/internal/company"
)

// PGStore persists snapshots as JSONB rows in PostgreSQL, one row per
// company identifier. Useful when several service instances need to share
// the snapshot set.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and ensures the snapshot table
// exists.
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS company_snapshots (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			snapshot JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &PGStore{pool: pool}, nil
}

// Save writes the snapshot row for c.ID.
func (s *PGStore) Save(ctx context.Context, c *company.Company) error {
	if c.ID == "" {
		return fmt.Errorf("company ID is required")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode company: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO company_snapshots (id, name, snapshot)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = $2, snapshot = $3`,
		c.ID, c.DisplayName(), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot for id.
func (s *PGStore) Load(ctx context.Context, id string) (*company.Company, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT snapshot FROM company_snapshots WHERE id = $1`, id,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var c company.Company
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}
	return &c, nil
}

// List enumerates every snapshot, sorted by display name.
func (s *PGStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, id FROM company_snapshots ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.ID); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return entries, nil
}

// Exists reports whether a snapshot row is present for id.
func (s *PGStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM company_snapshots WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot: %w", err)
	}
	return exists, nil
}

// Close closes the connection pool.
func (s *PGStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
