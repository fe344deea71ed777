package checker

import (
	"context"
	"net/http"
	"strings"
)

// TikTokChecker probes TikTok profile pages. Taken profiles embed the
// handle in a JSON description fragment within the page payload.
type TikTokChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single TikTok availability probe.
func (c *TikTokChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://tiktok.com"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(defaultTimeout)
	}

	resp, err := do(ctx, client, http.MethodGet, base+"/@"+handle, "")
	if err != nil {
		return false, err
	}

	body, err := readBody(resp)
	if err != nil {
		return false, err
	}

	return strings.Contains(body, `"desc":"@`+handle), nil
}
