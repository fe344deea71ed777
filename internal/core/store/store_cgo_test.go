//go:build cgo

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/namewastaken/namewastaken/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	s, err := Open(ctx, config.StoreConfig{Driver: "libsql", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, s.Migrate(ctx))

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenMemoryStore(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, config.StoreConfig{Driver: "libsql", Path: ":memory:"})
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "libsql", s.Driver())
	require.NoError(t, s.Close())
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "postgres"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported store driver")
}

func TestVerdictRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, ok, err := s.GetCachedVerdict(ctx, "github", "example")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SetCachedVerdict(ctx, "github", "example", true, time.Hour))

	taken, ok, err := s.GetCachedVerdict(ctx, "github", "example")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, taken)
}

func TestVerdictUpsert(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SetCachedVerdict(ctx, "github", "example", true, time.Hour))
	require.NoError(t, s.SetCachedVerdict(ctx, "github", "example", false, time.Hour))

	taken, ok, err := s.GetCachedVerdict(ctx, "github", "example")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, taken)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Entries)
}

func TestVerdictExpiry(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	// Insert an already-expired row directly; SetCachedVerdict refuses
	// non-positive TTLs.
	past := time.Now().UTC().Add(-time.Minute).Unix()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO check_cache (provider, handle, taken, checked_at, expires_at)
		VALUES ('github', 'example', 1, ?, ?)
	`, past, past)
	require.NoError(t, err)

	_, ok, err := s.GetCachedVerdict(ctx, "github", "example")
	require.NoError(t, err)
	require.False(t, ok)

	dropped, err := s.PruneExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, dropped)
}

func TestVerdictZeroTTLIsNoop(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SetCachedVerdict(ctx, "github", "example", true, 0))

	_, ok, err := s.GetCachedVerdict(ctx, "github", "example")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClearCache(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SetCachedVerdict(ctx, "github", "one", true, time.Hour))
	require.NoError(t, s.SetCachedVerdict(ctx, "tiktok", "two", false, time.Hour))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Entries)
	require.EqualValues(t, 2, stats.Providers)

	require.NoError(t, s.ClearCache(ctx))

	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, stats.Entries)
}

func TestVerdictsAdapterDegradesOnNilStore(t *testing.T) {
	v := &Verdicts{}

	_, ok := v.GetVerdict(context.Background(), "github", "example")
	require.False(t, ok)

	// Must not panic with no backing store.
	v.SetVerdict(context.Background(), "github", "example", true)
}

func TestVerdictsAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	v := &Verdicts{Store: s, TTL: time.Hour}
	v.SetVerdict(ctx, "github", "example", true)

	taken, ok := v.GetVerdict(ctx, "github", "example")
	require.True(t, ok)
	require.True(t, taken)
}
