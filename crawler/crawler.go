// Package crawler retrieves remote syndication documents over HTTP.
//
// It is the network collaborator behind nested source resolution and
// URL-based parsing: a thin client wrapper with a default timeout, a
// stable User-Agent, and a response size cap. Retry policy deliberately
// lives with callers; a single failed request is a single failed fetch.
package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kjwon15/libearth"
	"github.com/Kjwon15/libearth/feederrors"
)

const (
	// DefaultTimeout bounds a single fetch when the caller supplies no
	// client of its own.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize caps how many bytes of a response body are read.
	// Feeds larger than this are almost certainly not feeds.
	DefaultMaxBodySize = 10 << 20 // 10 MiB
)

// Client fetches documents over HTTP. The zero value is ready to use.
type Client struct {
	// HTTPClient is the underlying client. A default client with
	// DefaultTimeout is used when nil.
	HTTPClient *http.Client

	// UserAgent overrides the default libearth User-Agent header.
	UserAgent string

	// MaxBodySize caps how many bytes of a response body are read.
	// DefaultMaxBodySize is used when zero or negative.
	MaxBodySize int64
}

// DefaultClient is the client used by the package-level Fetch.
var DefaultClient = &Client{}

// Fetch retrieves url using DefaultClient.
func Fetch(ctx context.Context, url string) ([]byte, string, error) {
	return DefaultClient.Fetch(ctx, url)
}

// Fetch retrieves url and returns the response body and its Content-Type
// header. Network failures, non-200 statuses, and oversized bodies all
// return a *feederrors.FetchError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &feederrors.FetchError{
			URL:     url,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = libearth.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", &feederrors.FetchError{
			URL:     url,
			Message: "request failed",
			Cause:   err,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &feederrors.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	maxSize := c.MaxBodySize
	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, "", &feederrors.FetchError{
			URL:     url,
			Message: "failed to read response body",
			Cause:   err,
		}
	}
	if int64(len(data)) > maxSize {
		return nil, "", &feederrors.FetchError{
			URL:     url,
			Message: fmt.Sprintf("response body exceeds %d bytes", maxSize),
		}
	}

	return data, resp.Header.Get("Content-Type"), nil
}
