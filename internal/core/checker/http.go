package checker

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 5 * time.Second
	threadsTimeout = 10 * time.Second

	// maxBodyBytes caps profile page reads; availability markers always
	// appear well within the first couple of megabytes.
	maxBodyBytes = 4 << 20

	uaDesktop = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaCurl    = "curl/7.79.1"
	uaSelf    = "namewastaken/1.0"
)

func defaultClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func do(ctx context.Context, client *http.Client, method, url, userAgent string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	return client.Do(req)
}

func readBody(resp *http.Response) (string, error) {
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
