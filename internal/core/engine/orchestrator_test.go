package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/namewastaken/namewastaken/internal/core/checker"
	"github.com/namewastaken/namewastaken/internal/core/provider"
)

type stubChecker struct {
	taken bool
	err   error
	delay time.Duration

	mu    sync.Mutex
	calls int
}

func (s *stubChecker) Check(ctx context.Context, handle string) (bool, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return false, s.err
	}
	return s.taken, nil
}

func (s *stubChecker) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func stubProvider(name string, c checker.Checker) *provider.Provider {
	return &provider.Provider{
		Name:        name,
		DisplayName: name,
		Checker:     c,
		Retry:       checker.RetryPolicy{MaxRetries: 1, BaseDelay: time.Millisecond},
	}
}

type memoryCache struct {
	mu       sync.Mutex
	verdicts map[string]bool
	gets     int
	sets     int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{verdicts: make(map[string]bool)}
}

func (c *memoryCache) GetVerdict(ctx context.Context, providerName, handle string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	taken, ok := c.verdicts[providerName+"/"+handle]
	return taken, ok
}

func (c *memoryCache) SetVerdict(ctx context.Context, providerName, handle string, taken bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.verdicts[providerName+"/"+handle] = taken
}

func TestCheckProvidersPreservesOrder(t *testing.T) {
	providers := []*provider.Provider{
		stubProvider("slow", &stubChecker{taken: true, delay: 20 * time.Millisecond}),
		stubProvider("fast", &stubChecker{taken: false}),
	}

	o := &Orchestrator{}
	result := o.CheckProviders(context.Background(), providers, "example", false)

	require.Len(t, result.Results, 2)
	require.Equal(t, "slow", result.Results[0].Provider)
	require.Equal(t, "fast", result.Results[1].Provider)
	require.True(t, result.Results[0].Taken)
	require.True(t, result.Results[1].Available)
}

func TestCheckProvidersIsolatesFailures(t *testing.T) {
	providers := []*provider.Provider{
		stubProvider("broken", &stubChecker{err: errors.New("boom")}),
		stubProvider("healthy", &stubChecker{taken: true}),
	}

	o := &Orchestrator{}
	result := o.CheckProviders(context.Background(), providers, "example", false)

	require.Len(t, result.Results, 2)
	require.NotEmpty(t, result.Results[0].Err)
	require.False(t, result.Results[0].Taken)
	require.False(t, result.Results[0].Available)
	require.True(t, result.Results[1].Taken)

	require.Equal(t, 1, result.Summary.Errors)
	require.Equal(t, 1, result.Summary.Taken)
	require.Equal(t, 0, result.Summary.Available)
}

func TestCheckSingleUsesCache(t *testing.T) {
	stub := &stubChecker{taken: true}
	p := stubProvider("cached", stub)

	cache := newMemoryCache()
	cache.verdicts["cached/example"] = true

	o := &Orchestrator{Cache: cache}
	result := o.CheckSingle(context.Background(), p, "example", true)

	require.True(t, result.Taken)
	require.True(t, result.FromCache)
	require.Equal(t, 0, stub.callCount())
}

func TestCheckSingleStoresVerdictOnMiss(t *testing.T) {
	stub := &stubChecker{taken: false}
	p := stubProvider("fresh", stub)

	cache := newMemoryCache()
	o := &Orchestrator{Cache: cache}

	result := o.CheckSingle(context.Background(), p, "example", true)

	require.True(t, result.Available)
	require.False(t, result.FromCache)
	require.Equal(t, 1, stub.callCount())
	require.Equal(t, 1, cache.sets)

	taken, ok := cache.verdicts["fresh/example"]
	require.True(t, ok)
	require.False(t, taken)
}

func TestCheckSingleDoesNotCacheErrors(t *testing.T) {
	stub := &stubChecker{err: errors.New("down")}
	p := stubProvider("flaky", stub)

	cache := newMemoryCache()
	o := &Orchestrator{Cache: cache}

	result := o.CheckSingle(context.Background(), p, "example", true)

	require.NotEmpty(t, result.Err)
	require.Equal(t, 0, cache.sets)
}

func TestCheckSingleSkipsCacheWhenDisabled(t *testing.T) {
	stub := &stubChecker{taken: true}
	p := stubProvider("direct", stub)

	cache := newMemoryCache()
	cache.verdicts["direct/example"] = false

	o := &Orchestrator{Cache: cache}
	result := o.CheckSingle(context.Background(), p, "example", false)

	require.True(t, result.Taken)
	require.False(t, result.FromCache)
	require.Equal(t, 0, cache.gets)
	require.Equal(t, 0, cache.sets)
}

func TestCheckSingleRetryOverride(t *testing.T) {
	stub := &stubChecker{err: errors.New("down")}
	p := stubProvider("stubborn", stub)

	o := &Orchestrator{
		Retry: &checker.RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond},
	}
	result := o.CheckSingle(context.Background(), p, "example", false)

	require.NotEmpty(t, result.Err)
	// Override wins over the provider's MaxRetries of 1.
	require.Equal(t, 3, stub.callCount())
}

func TestCheckBulkKeepsInputOrder(t *testing.T) {
	providers := []*provider.Provider{
		stubProvider("a", &stubChecker{taken: true, delay: 10 * time.Millisecond}),
		stubProvider("b", &stubChecker{taken: false}),
	}

	o := &Orchestrator{}
	handles := []string{"first", "second", "third"}
	result := o.CheckBulkWithProviders(context.Background(), providers, handles, false)

	require.Len(t, result.Results, 3)
	for i, handle := range handles {
		require.Equal(t, handle, result.Results[i].Username)
		require.Len(t, result.Results[i].Results, 2)
		require.Equal(t, "a", result.Results[i].Results[0].Provider)
		require.Equal(t, "b", result.Results[i].Results[1].Provider)
		require.Equal(t, 1, result.Results[i].Summary.Taken)
		require.Equal(t, 1, result.Results[i].Summary.Available)
	}
}
