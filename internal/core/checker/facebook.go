package checker

import (
	"context"
	"net/http"
	"strings"
)

// Facebook rotates between several not-found phrasings depending on
// locale and page type; all three mean the profile does not exist.
var facebookNotFoundMarkers = []string{
	"Page Not Found",
	"This page isn't available",
	"This content isn't available",
}

// FacebookChecker probes Facebook profile pages with a desktop
// User-Agent; the mobile shell omits the not-found markers.
type FacebookChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single Facebook availability probe.
func (c *FacebookChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://www.facebook.com"
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

	for _, marker := range facebookNotFoundMarkers {
		if strings.Contains(body, marker) {
			return false, nil
		}
	}
	return true, nil
}
