package checker

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TelegramChecker probes t.me pages. Free handles title as
// "Telegram: Contact @handle"; taken handles title as "View @handle"
// or the account's display name.
type TelegramChecker struct {
	Client  *http.Client
	BaseURL string
}

// Check performs a single Telegram availability probe.
func (c *TelegramChecker) Check(ctx context.Context, handle string) (bool, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://t.me"
	}
	client := c.Client
	if client == nil {
		client = defaultClient(defaultTimeout)
	}

	resp, err := do(ctx, client, http.MethodGet, base+"/"+handle, uaCurl)
	if err != nil {
		return false, err
	}

	body, err := readBody(resp)
	if err != nil {
		return false, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return false, err
	}

	title := doc.Find("title").First().Text()
	return !strings.Contains(title, "Contact @"), nil
}
