// Package libearth provides parsing of syndication feeds into a single canonical model.
//
// libearth reads RSS 2.0, RSS 1.0 (RDF Site Summary), and Atom documents and
// maps all of them onto one Atom-flavored data model, so downstream code never
// branches on the source format.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - parser: Detect a document's format and map it onto the canonical model
//   - feed: The canonical data model every format is translated into
//   - crawler: HTTP retrieval of remote feed documents
//   - feederrors: The error taxonomy shared by the other packages
//
// All parsing paths support the following syndication formats:
//   - RSS 2.0: https://www.rssboard.org/rss-specification
//   - RSS 1.0 (RDF Site Summary): https://web.resource.org/rss/1.0/spec
//   - Atom 1.0: https://www.rfc-editor.org/rfc/rfc4287 (legacy Atom 0.3
//     documents are accepted as well)
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/Kjwon15/libearth
//
// # Quick Start
//
// Parse a feed from disk:
//
//	import "github.com/Kjwon15/libearth/parser"
//
//	p := parser.New()
//	result, err := p.Parse("feed.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Format: %s\n", result.Format)
//	fmt.Printf("Title: %s\n", result.Feed.Title.Value)
//	for _, entry := range result.Feed.Entries {
//		fmt.Printf("  - %s\n", entry.Title.Value)
//	}
//
// Parse with functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("feed.xml"),
//		parser.WithSourceURL("http://planet.example.com/feed.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Detect a document's format without parsing it:
//
//	format, err := parser.DetectFormat(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s (%s)\n", format, format.MediaType())
//
// # Parser Package
//
// The parser package turns raw feed documents into *feed.Feed values. Input
// may come from a file path, an io.Reader, a byte slice, or an HTTP(S) URL;
// the pipeline normalizes the character encoding, detects the format from the
// root element, dispatches every element to the matching mapping rule, and
// finishes with a normalization pass that fills the gaps sloppy feeds leave
// behind (missing identifiers, missing self links, missing timestamps).
//
// Key features:
//   - Format auto-detection from the document root
//   - Charset normalization (XML declarations, BOMs, statistical detection)
//   - Relative reference resolution against xml:base and the document origin
//   - Timezone inference from the feed language and the origin host
//   - Nested source resolution for RSS <source> elements
//   - Entry parsing and source resolution can each be switched off
//
// Example:
//
//	p := parser.New()
//	p.DefaultTimezone = time.UTC
//	p.SkipSourceResolution = true
//
//	result, err := p.ParseContext(ctx, "https://planet.example.com/rss20.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if link := result.Feed.LinkByRelation(feed.RelationAlternate); link != nil {
//		fmt.Printf("Site: %s\n", link.URI)
//	}
//
// See the parser package documentation for more details.
//
// # Feed Package
//
// The feed package defines the canonical model: Feed, Entry, Link, Person,
// Category, Text, Content, and Generator. The shapes follow Atom because Atom
// is the most expressive of the supported formats; RSS documents are lifted
// into it rather than the reverse. All types carry JSON and YAML tags, so a
// parsed feed serializes cleanly for storage or transport.
//
// Key features:
//   - One model for every input format
//   - Link lookup by relation on both feeds and entries
//   - Multiple authors, contributors, and categories per element
//   - Entry sources preserve the metadata of the feed an item came from
//
// Example:
//
//	for _, entry := range f.Entries {
//		if enc := entry.LinkByRelation(feed.RelationEnclosure); enc != nil {
//			fmt.Printf("%s (%s, %d bytes)\n", enc.URI, enc.MediaType, enc.ByteSize)
//		}
//	}
//
// See the feed package documentation for more details.
//
// # Crawler Package
//
// The crawler package retrieves remote documents over HTTP. It is the network
// collaborator behind URL parsing and nested source resolution: a thin client
// with a default timeout, a stable User-Agent, and a response size cap.
//
// Example:
//
//	client := &crawler.Client{
//		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
//		UserAgent:   "planet-aggregator/1.0",
//		MaxBodySize: 2 << 20,
//	}
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("https://example.com/feed.atom"),
//		parser.WithFetcher(client),
//	)
//
// Any type implementing the parser.Fetcher interface may stand in for the
// crawler, which is how tests and the bundled MCP server substitute their own
// transport policy.
//
// # Common Workflows
//
// Detect, then parse with a forced format:
//
//	format, err := parser.DetectFormat(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := parser.ParseWithOptions(
//		parser.WithBytes(data),
//		parser.WithSourceURL(url),
//		parser.WithFormat(format),
//	)
//
// Headline-only polling (skip entries entirely):
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath(url),
//		parser.WithEntryParsing(false),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("updated: %s\n", result.Feed.UpdatedAt.Format(time.RFC3339))
//
// Parse many feeds concurrently:
//
//	p := parser.New()
//	for _, url := range urls {
//		go func() {
//			result, err := p.ParseContext(ctx, url)
//			if err != nil {
//				log.Printf("%s: %v", url, err)
//				return
//			}
//			store(result.Feed)
//		}()
//	}
//
// # Security Considerations
//
// Parsing is partially a network activity, so the defaults are conservative:
//
//   - Source resolution fetches URLs named by the document itself. Disable it
//     with WithSourceResolution(false), or install a Fetcher that enforces
//     your own egress policy, when parsing untrusted input
//   - Response bodies are capped (default: 10 MiB) to prevent resource
//     exhaustion from hostile servers
//   - Character encodings are normalized before parsing; undecodable input is
//     rejected rather than guessed at byte by byte
//   - The bundled MCP server refuses private, loopback, and link-local
//     addresses unless explicitly allowed
//
// # Limitations
//
// Current limitations:
//
//   - Parsing only: the library reads feeds but does not generate RSS or Atom
//     output
//   - JSON Feed and other non-XML formats are not supported
//   - No conditional requests: the crawler performs plain GETs and leaves
//     ETag/Last-Modified caching to callers
//   - Nested sources resolve one level deep; entries of a nested source are
//     not parsed
//
// # Performance Tips
//
// For best performance:
//
//   - Skip entry parsing when only feed metadata is needed
//     (WithEntryParsing(false))
//   - Skip source resolution when nested source metadata is not needed; it
//     removes all secondary network fetches
//   - Reuse Parser instances; they are safe for concurrent use as long as
//     their fields are not mutated after the first Parse call
//   - Supply WithBytes instead of WithReader when the document is already in
//     memory
//
// # Error Handling
//
// All packages report failures through the feederrors taxonomy. Every error
// wraps one of four sentinels, so callers can branch with errors.Is without
// inspecting messages:
//
//	result, err := p.Parse("feed.xml")
//	switch {
//	case errors.Is(err, feederrors.ErrUnknownFormat):
//		// not a syndication document
//	case errors.Is(err, feederrors.ErrFetch):
//		// network failure; retry later
//	case errors.Is(err, feederrors.ErrParse):
//		// malformed document
//	case err != nil:
//		log.Fatal(err)
//	}
//
// The concrete types (ParseError, FetchError, UnknownFormatError, ConfigError)
// carry structured detail such as the failing URL, HTTP status, and offending
// element, reachable with errors.As.
//
// # Version Compatibility
//
// This library is designed to be backward compatible within major versions.
// The public API follows semantic versioning:
//
//   - Major version changes may include breaking API changes
//   - Minor version changes add functionality in a backward-compatible manner
//   - Patch version changes include backward-compatible bug fixes
//
// When upgrading, check the CHANGELOG for any breaking changes or new features.
//
// # Command-Line Interface
//
// In addition to the library packages, libearth provides a command-line interface:
//
//	# Parse a feed and print a summary
//	libearth parse feed.xml
//
//	# Parse a remote feed as JSON
//	libearth parse -output json https://planet.example.com/rss20.xml
//
//	# Detect a document's format
//	libearth detect feed.xml
//
//	# Serve feed tools over the Model Context Protocol
//	libearth mcp
//
// Install the CLI:
//
//	go install github.com/Kjwon15/libearth/cmd/libearth@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/Kjwon15/libearth
//   - RSS 2.0 Specification: https://www.rssboard.org/rss-specification
//   - Atom Syndication Format: https://www.rfc-editor.org/rfc/rfc4287
//   - Go Package Documentation: https://pkg.go.dev/github.com/Kjwon15/libearth
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package libearth
