package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS check_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		handle TEXT NOT NULL,
		taken INTEGER NOT NULL,
		checked_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL,
		UNIQUE(provider, handle)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_check_cache_expires ON check_cache(expires_at);`,
	`CREATE INDEX IF NOT EXISTS idx_check_cache_handle ON check_cache(handle);`,
}

// Migrate ensures the required database tables exist.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store migration failed: %w", err)
		}
	}

	return nil
}
