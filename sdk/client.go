// Package sdk is the embeddable client for checking username
// availability across social platforms.
package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/namewastaken/namewastaken/internal/config"
	"github.com/namewastaken/namewastaken/internal/core"
	"github.com/namewastaken/namewastaken/internal/core/engine"
	"github.com/namewastaken/namewastaken/internal/core/provider"
	"github.com/namewastaken/namewastaken/internal/core/store"
)

// Client checks username availability. Construct it with New; the zero
// value is not usable.
type Client struct {
	eng      *engine.Orchestrator
	st       *store.Store
	useCache bool
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	cacheEnabled bool
	cachePath    string
	cacheTTL     time.Duration
}

// WithoutCache disables the verdict cache entirely.
func WithoutCache() Option {
	return func(o *options) { o.cacheEnabled = false }
}

// WithCachePath stores the verdict cache at the given database path.
func WithCachePath(path string) Option {
	return func(o *options) { o.cachePath = path }
}

// WithCacheTTL overrides how long verdicts stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.cacheTTL = ttl }
}

// New creates a Client. The verdict cache is enabled by default and
// degrades silently to direct checks when its database cannot be opened.
func New(opts ...Option) *Client {
	o := &options{
		cacheEnabled: true,
		cachePath:    config.DefaultStorePath(),
		cacheTTL:     24 * time.Hour,
	}
	for _, opt := range opts {
		opt(o)
	}

	client := &Client{useCache: o.cacheEnabled}
	eng := &engine.Orchestrator{}

	if o.cacheEnabled {
		ctx := context.Background()
		st, err := store.Open(ctx, config.StoreConfig{Path: o.cachePath})
		if err == nil {
			if err := st.Migrate(ctx); err == nil {
				client.st = st
				eng.Cache = &store.Verdicts{Store: st, TTL: o.cacheTTL}
			} else {
				_ = st.Close()
			}
		}
	}

	client.eng = eng
	return client
}

// Close releases the cache database, if one was opened.
func (c *Client) Close() error {
	if c.st == nil {
		return nil
	}
	return c.st.Close()
}

// Check checks one username against every platform.
func (c *Client) Check(ctx context.Context, username string) (*core.CheckAllResult, error) {
	handle, err := core.ParseHandle(username)
	if err != nil {
		return nil, err
	}
	return c.eng.CheckAll(ctx, handle, c.useCache), nil
}

// CheckPlatforms checks one username against the named platforms.
func (c *Client) CheckPlatforms(ctx context.Context, username string, platforms ...string) (*core.CheckAllResult, error) {
	handle, err := core.ParseHandle(username)
	if err != nil {
		return nil, err
	}

	selected, err := resolvePlatforms(platforms)
	if err != nil {
		return nil, err
	}

	return c.eng.CheckProviders(ctx, selected, handle, c.useCache), nil
}

// CheckMany checks several usernames against every platform.
func (c *Client) CheckMany(ctx context.Context, usernames ...string) (*core.BulkCheckResult, error) {
	handles := make([]string, 0, len(usernames))
	for _, raw := range usernames {
		handle, err := core.ParseHandle(raw)
		if err != nil {
			return nil, err
		}
		handles = append(handles, handle)
	}

	return c.eng.CheckBulk(ctx, handles, c.useCache), nil
}

// CheckPlatform checks one username on a single platform.
func (c *Client) CheckPlatform(ctx context.Context, username, platform string) (*core.CheckResult, error) {
	handle, err := core.ParseHandle(username)
	if err != nil {
		return nil, err
	}

	p, ok := provider.Resolve(platform)
	if !ok {
		return nil, fmt.Errorf("unknown platform: %s", platform)
	}

	return c.eng.CheckSingle(ctx, p, handle, c.useCache), nil
}

// CheckURL checks the handle found in a profile URL on its platform.
// The handle is taken as the provider's URL pattern extracted it; GitHub
// profile URLs may carry hyphens that bare handles do not allow.
func (c *Client) CheckURL(ctx context.Context, url string) (*core.CheckResult, error) {
	p, handle, ok := provider.ParseProfileURL(url)
	if !ok {
		return nil, fmt.Errorf("unrecognized profile URL: %s", url)
	}

	return c.eng.CheckSingle(ctx, p, handle, c.useCache), nil
}

// Available reports whether the username is free on every platform.
// Platforms that fail to answer count as not available.
func (c *Client) Available(ctx context.Context, username string) (bool, error) {
	result, err := c.Check(ctx, username)
	if err != nil {
		return false, err
	}
	return result.FullyAvailable(), nil
}

// Taken reports whether the username is claimed on any platform.
func (c *Client) Taken(ctx context.Context, username string) (bool, error) {
	result, err := c.Check(ctx, username)
	if err != nil {
		return false, err
	}
	return result.AnyTaken(), nil
}

// Platforms lists the supported platform names in registry order.
func Platforms() []string {
	list := provider.List()
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	return names
}

func resolvePlatforms(names []string) ([]*provider.Provider, error) {
	if len(names) == 0 {
		return provider.List(), nil
	}

	selected := make([]*provider.Provider, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		p, ok := provider.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("unknown platform: %s", name)
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		selected = append(selected, p)
	}
	return selected, nil
}
