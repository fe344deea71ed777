package checker

import (
	"context"
	"io"
	"net/http"
)

// YouTubeChecker probes YouTube handle pages. YouTube answers 404 for
// free handles; anything else, redirects included, means taken.
type YouTubeChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single YouTube availability probe.
func (c *YouTubeChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://www.youtube.com"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(defaultTimeout)
	}

	resp, err := do(ctx, client, http.MethodGet, base+"/@"+handle, "")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	return resp.StatusCode != http.StatusNotFound, nil
}
