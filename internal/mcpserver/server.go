// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes libearth feed parsing as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Kjwon15/libearth"
)

const serverInstructions = `libearth MCP server — parses RSS 2.0, RSS 1.0 (RDF), and Atom feeds into one canonical model.

Configuration: All defaults are configurable via LIBEARTH_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- LIBEARTH_CACHE_FILE_TTL (default: 15m) — cache TTL for local file feeds
- LIBEARTH_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched feeds
- LIBEARTH_CACHE_ENABLED (default: true) — disable feed caching entirely
- LIBEARTH_ITEM_LIMIT (default: 50) — default page size for the items tool
- LIBEARTH_SOURCE_RESOLUTION (default: true) — fetch feeds referenced by item source elements
- LIBEARTH_ALLOW_PRIVATE_IPS (default: false) — allow fetching from private/loopback addresses

Caching: Parsed feeds are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		feedCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "libearth", Version: libearth.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a syndication feed (RSS 2.0, RSS 1.0, or Atom) into the canonical model. Returns a summary: identifier, title, subtitle, updated time, authors, links, and entry count. Use full=true to get the whole canonical feed as YAML; for large feeds prefer the items tool to page through entries. Use no_entries=true to map feed-level metadata only.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect which syndication format a document is in without mapping it. Returns the format name (rss2, rss1, atom) and its conventional media type. Fails when the document matches no supported format.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "items",
		Description: "List the entries of a feed as one-line summaries (id, title, permalink, timestamps, author). Use offset/limit to paginate; total reports the full entry count. Default limit is configurable via LIBEARTH_ITEM_LIMIT (default 50).",
	}, handleItems)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ItemLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ItemLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// truncateText shortens s to at most maxLen runes, appending an ellipsis
// when anything was cut. Summaries stay summaries even when a feed's
// subtitle is a whole paragraph.
func truncateText(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
