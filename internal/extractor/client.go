package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrRetriesExhausted indicates a page fetch failed on every attempt in its
// retry budget.
var ErrRetriesExhausted = errors.New("retries exhausted")

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Client fetches listing pages with bounded retry and exponential backoff.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient builds a client that makes up to attempts tries per page,
// waiting retryWait (doubling, capped at 8x) between tries.
func NewClient(baseURL string, timeout, retryWait time.Duration, attempts int) *Client {
	if attempts < 1 {
		attempts = 1
	}
	if retryWait <= 0 {
		retryWait = time.Second
	}

	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", userAgent)
	c.SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	c.SetRetryCount(attempts - 1)
	c.SetRetryWaitTime(retryWait)
	c.SetRetryMaxWaitTime(8 * retryWait)
	c.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return r.StatusCode() >= 500 || r.StatusCode() == http.StatusTooManyRequests
	})

	return &Client{http: c, baseURL: strings.TrimRight(baseURL, "/")}
}

// PageURL builds the listing URL for a 1-based page index. The first page is
// the site root; later pages live under /pageN.
func (c *Client) PageURL(page int) string {
	if page <= 1 {
		return c.baseURL
	}
	return fmt.Sprintf("%s/page%d", c.baseURL, page)
}

// FetchPage returns the HTML body of the given listing page.
func (c *Client) FetchPage(ctx context.Context, page int) (string, error) {
	url := c.PageURL(page)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRetriesExhausted, url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: %s: status %d", ErrRetriesExhausted, url, resp.StatusCode())
	}
	return resp.String(), nil
}
