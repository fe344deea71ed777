// Package provider defines the static descriptors for every supported
// platform: identity, aliases, profile URL shapes and the checker that
// probes it.
package provider

import (
	"context"
	"regexp"
	"strings"

	"github.com/namewastaken/namewastaken/internal/core/checker"
)

// Provider describes one platform. Providers are immutable, defined once
// at process start, and shared read-only.
type Provider struct {
	// Name is the unique lowercase identifier, e.g. "tiktok".
	Name string
	// DisplayName is the human-readable platform name.
	DisplayName string
	// Aliases are accepted input synonyms; the first is the identifier.
	Aliases []string

	// Checker performs the raw single-attempt probe.
	Checker checker.Checker
	// Retry bounds how the probe is reattempted on failure.
	Retry checker.RetryPolicy

	buildURL    func(handle string) string
	urlPatterns []*regexp.Regexp
}

// Check probes the platform for the handle, retrying transient failures
// under the provider's retry policy. Exhausted retries surface as a
// *checker.CheckError; a nil error means the verdict is definitive.
func (p *Provider) Check(ctx context.Context, handle string) (bool, error) {
	return p.CheckWith(ctx, handle, p.Retry)
}

// CheckWith probes like Check but under an explicit retry policy.
func (p *Provider) CheckWith(ctx context.Context, handle string, policy checker.RetryPolicy) (bool, error) {
	taken, err := checker.WithRetry(ctx, policy, func() (bool, error) {
		return p.Checker.Check(ctx, handle)
	})
	if err != nil {
		return false, &checker.CheckError{Provider: p.Name, Reason: err.Error()}
	}
	return taken, nil
}

// ProfileURL builds the canonical profile URL for the handle.
func (p *Provider) ProfileURL(handle string) string {
	if p.buildURL == nil {
		return ""
	}
	return p.buildURL(handle)
}

// ParseURL extracts a handle from a URL matching this provider's profile
// shape. The handle is lowercased; ok is false when the URL does not
// match.
func (p *Provider) ParseURL(url string) (handle string, ok bool) {
	for _, pattern := range p.urlPatterns {
		match := pattern.FindStringSubmatch(url)
		if len(match) > 1 && match[1] != "" {
			return strings.ToLower(match[1]), true
		}
	}
	return "", false
}
