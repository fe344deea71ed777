package checker

import (
	"context"
	"net/http"
	"strings"
)

// InstagramChecker probes Instagram profile pages. Taken profiles carry
// the handle as a JSON username object in the embedded page data.
type InstagramChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single Instagram availability probe.
func (c *InstagramChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://www.instagram.com"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(defaultTimeout)
	}

	resp, err := do(ctx, client, http.MethodGet, base+"/"+handle, "")
	if err != nil {
		return false, err
	}

	body, err := readBody(resp)
	if err != nil {
		return false, err
	}

	return strings.Contains(body, `{"username":"`+handle+`"}`), nil
}
