package crawler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kjwon15/libearth/feederrors"
)

const sampleRSS = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Crawler Test</title>
  </channel>
</rss>`

// TestFetch tests document retrieval with a test server
func TestFetch(t *testing.T) {
	tests := []struct {
		name          string
		setupServer   func() *httptest.Server
		expectError   bool
		expectStatus  int
		errorContains string
	}{
		{
			name: "successful fetch with 200 OK",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/rss+xml")
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(sampleRSS))
				}))
			},
			expectError: false,
		},
		{
			name: "404 not found",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					_, _ = w.Write([]byte("Not Found"))
				}))
			},
			expectError:   true,
			expectStatus:  404,
			errorContains: "status 404",
		},
		{
			name: "500 internal server error",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte("Internal Server Error"))
				}))
			},
			expectError:   true,
			expectStatus:  500,
			errorContains: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.setupServer()
			defer server.Close()

			c := &Client{}
			data, contentType, err := c.Fetch(context.Background(), server.URL)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)

				var fetchErr *feederrors.FetchError
				require.True(t, errors.As(err, &fetchErr))
				assert.Equal(t, tt.expectStatus, fetchErr.StatusCode)
				assert.Equal(t, server.URL, fetchErr.URL)
			} else {
				require.NoError(t, err)
				assert.Contains(t, string(data), "Crawler Test")
				assert.Equal(t, "application/rss+xml", contentType)
			}
		})
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	t.Run("default user agent", func(t *testing.T) {
		c := &Client{}
		_, _, err := c.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(gotAgent, "libearth/"),
			"expected libearth user agent, got: %s", gotAgent)
	})

	t.Run("custom user agent", func(t *testing.T) {
		c := &Client{UserAgent: "feedbot/1.0"}
		_, _, err := c.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "feedbot/1.0", gotAgent)
	})
}

func TestFetchBodySizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer server.Close()

	c := &Client{MaxBodySize: 1024}
	_, _, err := c.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 1024 bytes")
	assert.True(t, errors.Is(err, feederrors.ErrFetch))
}

func TestFetchContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := &Client{}
	_, _, err := c.Fetch(ctx, server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, feederrors.ErrFetch))
}

func TestFetchInvalidURL(t *testing.T) {
	c := &Client{}
	_, _, err := c.Fetch(context.Background(), "http://\x00invalid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, feederrors.ErrFetch))
}
