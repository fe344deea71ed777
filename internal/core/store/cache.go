package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// GetCachedVerdict returns a cached verdict if it has not expired. ok is
// false on a miss; err is reserved for real database failures.
func (s *Store) GetCachedVerdict(ctx context.Context, provider, handle string) (taken bool, ok bool, err error) {
	if s == nil || s.DB == nil {
		return false, false, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	provider = strings.TrimSpace(provider)
	handle = strings.TrimSpace(handle)
	if provider == "" || handle == "" {
		return false, false, errors.New("cache provider and handle are required")
	}

	var takenInt int
	row := s.DB.QueryRowContext(ctx, `
		SELECT taken
		FROM check_cache
		WHERE provider = ? AND handle = ? AND expires_at > ?
	`, provider, handle, time.Now().UTC().Unix())

	if err := row.Scan(&takenInt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("fetch cached verdict: %w", err)
	}

	return takenInt != 0, true, nil
}

// SetCachedVerdict stores a verdict with a TTL, replacing any previous
// entry for the same provider and handle. A non-positive TTL is a no-op.
func (s *Store) SetCachedVerdict(ctx context.Context, provider, handle string, taken bool, ttl time.Duration) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if ttl <= 0 {
		return nil
	}

	provider = strings.TrimSpace(provider)
	handle = strings.TrimSpace(handle)
	if provider == "" || handle == "" {
		return errors.New("cache provider and handle are required")
	}

	takenInt := 0
	if taken {
		takenInt = 1
	}

	now := time.Now().UTC()
	expires := now.Add(ttl)

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO check_cache (provider, handle, taken, checked_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(provider, handle) DO UPDATE SET
			taken = excluded.taken,
			checked_at = excluded.checked_at,
			expires_at = excluded.expires_at
	`, provider, handle, takenInt, now.Unix(), expires.Unix())
	if err != nil {
		return fmt.Errorf("store cached verdict: %w", err)
	}

	return nil
}

// ClearCache drops every cached verdict.
func (s *Store) ClearCache(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM check_cache`); err != nil {
		return fmt.Errorf("clear verdict cache: %w", err)
	}
	return nil
}

// PruneExpired removes verdicts past their expiry and reports how many
// rows were dropped.
func (s *Store) PruneExpired(ctx context.Context) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM check_cache WHERE expires_at <= ?`, time.Now().UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("prune verdict cache: %w", err)
	}

	dropped, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return dropped, nil
}

// CacheStats summarizes the verdict cache contents.
type CacheStats struct {
	Entries   int64
	Expired   int64
	Providers int64
}

// Stats reports entry counts for the verdict cache.
func (s *Store) Stats(ctx context.Context) (*CacheStats, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	stats := &CacheStats{}
	now := time.Now().UTC().Unix()

	row := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(CASE WHEN expires_at <= ? THEN 1 END),
			COUNT(DISTINCT provider)
		FROM check_cache
	`, now)
	if err := row.Scan(&stats.Entries, &stats.Expired, &stats.Providers); err != nil {
		return nil, fmt.Errorf("read cache stats: %w", err)
	}

	return stats, nil
}
