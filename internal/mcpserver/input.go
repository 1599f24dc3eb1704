package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Kjwon15/libearth/internal/options"
	"github.com/Kjwon15/libearth/parser"
)

// feedInput represents the three ways a feed document can be provided to
// a tool. Exactly one of File, URL, or Content must be set.
type feedInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a feed document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a feed document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline feed document content (XML)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *parser.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// feedCacheStore provides a session-scoped cache for parsed feeds.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string.
// Entries have per-type TTLs and a background sweeper removes expired entries.
type feedCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var feedCache = &feedCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *feedCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the oldest entry if at capacity.
func (c *feedCacheStore) putWithTTL(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	// If already cached, just update.
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	// Evict oldest if at capacity.
	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *feedCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *feedCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	var sweeping atomic.Bool
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !sweeping.CompareAndSwap(false, true) {
					continue
				}
				c.sweep()
				sweeping.Store(false)
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *feedCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *feedCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given feed input.
// Returns empty string when extra parser options are provided since we cannot
// distinguish option sets.
func makeCacheKey(in feedInput, extraOpts []parser.Option) string {
	if len(extraOpts) > 0 {
		return ""
	}

	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	case in.URL != "":
		return fmt.Sprintf("url:%s", in.URL)
	default:
		return ""
	}
}

// validate checks that exactly one input source is set.
func (in feedInput) validate() error {
	return options.ValidateSingleInputSource(
		"exactly one of file, url, or content must be provided (got 0)",
		"exactly one of file, url, or content must be provided (got several)",
		in.File != "", in.URL != "", in.Content != "",
	)
}

// resolve parses the feed from whichever input was provided, using the
// cache for file, URL, and content inputs. Additional parser options can
// be passed to customize parsing behavior.
//
// The SSRF guard applies to every input kind, not just URL inputs:
// source elements inside a document trigger fetches of
// document-controlled URLs during nested source resolution.
func (in feedInput) resolve(ctx context.Context, extraOpts ...parser.Option) (*parser.ParseResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Enforce inline content size limit.
	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set LIBEARTH_MAX_INLINE_SIZE to increase",
			len(in.Content), cfg.MaxInlineSize)
	}

	// Determine cache key and TTL (skip when caching is disabled).
	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(in, extraOpts)
		switch {
		case in.File != "":
			ttl = cfg.CacheFileTTL
		case in.URL != "":
			ttl = cfg.CacheURLTTL
		default:
			ttl = cfg.CacheContentTTL
		}
	}

	if key != "" {
		if cached := feedCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []parser.Option{
		parser.WithContext(ctx),
		parser.WithSourceResolution(cfg.SourceResolution),
	}
	if !cfg.AllowPrivateIPs {
		opts = append(opts, parser.WithFetcher(safeFetcher()))
	}
	switch {
	case in.File != "":
		opts = append(opts, parser.WithFilePath(in.File))
	case in.URL != "":
		opts = append(opts, parser.WithFilePath(in.URL))
	case in.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(in.Content)))
	}
	opts = append(opts, extraOpts...)

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Cache the result for future calls (key is empty when caching is disabled).
	if key != "" {
		feedCache.putWithTTL(key, result, ttl)
	}

	return result, nil
}

// loadBytes returns the raw document bytes without parsing them. The
// detect tool classifies documents without mapping them.
func (in feedInput) loadBytes(ctx context.Context) ([]byte, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	switch {
	case in.File != "":
		return os.ReadFile(in.File)
	case in.URL != "":
		data, _, err := fetcherForPolicy().Fetch(ctx, in.URL)
		return data, err
	default:
		if int64(len(in.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes", len(in.Content), cfg.MaxInlineSize)
		}
		return []byte(in.Content), nil
	}
}
