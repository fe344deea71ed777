package checker

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// ThreadsChecker probes Threads profiles. Free handles redirect to the
// login page; taken handles resolve to the profile. The custom User-Agent
// avoids the SPA shell, which never redirects.
type ThreadsChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single Threads availability probe.
func (c *ThreadsChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://www.threads.com"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(threadsTimeout)
	}

	resp, err := do(ctx, client, http.MethodGet, base+"/@"+handle, uaSelf)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	finalURL := strings.ToLower(resp.Request.URL.String())
	return !strings.Contains(finalURL, "/login"), nil
}
