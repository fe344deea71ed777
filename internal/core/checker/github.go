package checker

import (
	"context"
	"io"
	"net/http"
)

// GitHubChecker probes GitHub profiles with a HEAD request; 200 means
// the handle is claimed, 404 means it is free.
type GitHubChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single GitHub availability probe.
func (c *GitHubChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://github.com"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(defaultTimeout)
	}

	resp, err := do(ctx, client, http.MethodHead, base+"/"+handle, uaCurl)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}
