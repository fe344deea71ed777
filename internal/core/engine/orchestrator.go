// Package engine fans username checks out across providers and folds the
// verdicts back into ordered results.
package engine

import (
	"context"
	"sync"

	"github.com/namewastaken/namewastaken/internal/core"
	"github.com/namewastaken/namewastaken/internal/core/checker"
	"github.com/namewastaken/namewastaken/internal/core/provider"
)

// Cache resolves previously settled verdicts. Implementations must treat
// lookup failures as misses; the engine never fails a check over cache
// trouble.
type Cache interface {
	GetVerdict(ctx context.Context, providerName, handle string) (taken bool, ok bool)
	SetVerdict(ctx context.Context, providerName, handle string, taken bool)
}

// Orchestrator runs availability checks concurrently across providers.
// The zero value checks every registered provider with no cache.
type Orchestrator struct {
	// Providers is the set to fan out over; nil means the full registry.
	Providers []*provider.Provider
	// Cache short-circuits repeat checks. Nil disables caching entirely.
	Cache Cache
	// Retry overrides every provider's retry policy when non-nil.
	Retry *checker.RetryPolicy
}

func (o *Orchestrator) providerSet() []*provider.Provider {
	if o.Providers != nil {
		return o.Providers
	}
	return provider.List()
}

// CheckSingle checks one handle against one provider. It never returns an
// error: probe failures are folded into the result so that one flaky
// platform cannot sink a whole fan-out.
func (o *Orchestrator) CheckSingle(ctx context.Context, p *provider.Provider, handle string, useCache bool) *core.CheckResult {
	result := &core.CheckResult{
		Provider:    p.Name,
		DisplayName: p.DisplayName,
		URL:         p.ProfileURL(handle),
	}

	if useCache && o.Cache != nil {
		if taken, ok := o.Cache.GetVerdict(ctx, p.Name, handle); ok {
			result.Taken = taken
			result.Available = !taken
			result.FromCache = true
			return result
		}
	}

	var (
		taken bool
		err   error
	)
	if o.Retry != nil {
		taken, err = p.CheckWith(ctx, handle, *o.Retry)
	} else {
		taken, err = p.Check(ctx, handle)
	}
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Taken = taken
	result.Available = !taken
	if useCache && o.Cache != nil {
		o.Cache.SetVerdict(ctx, p.Name, handle, taken)
	}
	return result
}

// CheckAll checks one handle against every provider in registry order.
func (o *Orchestrator) CheckAll(ctx context.Context, handle string, useCache bool) *core.CheckAllResult {
	return o.CheckProviders(ctx, o.providerSet(), handle, useCache)
}

// CheckProviders checks one handle against an explicit provider list.
// Checks run concurrently; results land at the index of their provider.
func (o *Orchestrator) CheckProviders(ctx context.Context, providers []*provider.Provider, handle string, useCache bool) *core.CheckAllResult {
	results := make([]*core.CheckResult, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p *provider.Provider) {
			defer wg.Done()
			results[i] = o.CheckSingle(ctx, p, handle, useCache)
		}(i, p)
	}
	wg.Wait()

	out := &core.CheckAllResult{Username: handle, Results: results}
	out.Summarize()
	return out
}

// CheckBulk checks many handles, each against every provider. All checks
// across all handles run concurrently; per-handle results keep input
// order.
func (o *Orchestrator) CheckBulk(ctx context.Context, handles []string, useCache bool) *core.BulkCheckResult {
	return o.CheckBulkWithProviders(ctx, o.providerSet(), handles, useCache)
}

// CheckBulkWithProviders checks many handles against an explicit provider
// list.
func (o *Orchestrator) CheckBulkWithProviders(ctx context.Context, providers []*provider.Provider, handles []string, useCache bool) *core.BulkCheckResult {
	results := make([]*core.CheckAllResult, len(handles))
	for i := range handles {
		results[i] = &core.CheckAllResult{
			Username: handles[i],
			Results:  make([]*core.CheckResult, len(providers)),
		}
	}

	var wg sync.WaitGroup
	for hi, handle := range handles {
		for pi, p := range providers {
			wg.Add(1)
			go func(hi, pi int, handle string, p *provider.Provider) {
				defer wg.Done()
				results[hi].Results[pi] = o.CheckSingle(ctx, p, handle, useCache)
			}(hi, pi, handle, p)
		}
	}
	wg.Wait()

	for _, r := range results {
		r.Summarize()
	}
	return &core.BulkCheckResult{Results: results}
}
