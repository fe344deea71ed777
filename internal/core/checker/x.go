package checker

import (
	"context"
	"net/http"
	"strings"
)

// Markers X serves on missing-profile pages. The apostrophe varies with
// rendering path, so both forms are part of the same signal.
var xNotFoundMarkers = []string{
	"This account doesn’t exist",
	"This account doesn't exist",
}

// XChecker probes X/Twitter profile pages with a desktop browser
// User-Agent; without one X serves a shell page with no marker at all.
type XChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single X availability probe.
func (c *XChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://x.com"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(defaultTimeout)
	}

	resp, err := do(ctx, client, http.MethodGet, base+"/"+handle, uaDesktop)
	if err != nil {
		return false, err
	}

	body, err := readBody(resp)
	if err != nil {
		return false, err
	}

	for _, marker := range xNotFoundMarkers {
		if strings.Contains(body, marker) {
			return false, nil
		}
	}
	return true, nil
}
