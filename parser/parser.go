package parser

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/beevik/etree"

	"github.com/Kjwon15/libearth/crawler"
	"github.com/Kjwon15/libearth/feed"
	"github.com/Kjwon15/libearth/feederrors"
	"github.com/Kjwon15/libearth/internal/encodingutil"
	"github.com/Kjwon15/libearth/internal/tzutil"
)

// Fetcher retrieves the bytes of a remote document along with its
// Content-Type. *crawler.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// Parser handles syndication feed parsing
type Parser struct {
	// Fetcher retrieves URL inputs and the documents that item source
	// elements reference.
	// If nil, crawler.DefaultClient is used.
	Fetcher Fetcher
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// DefaultTimezone pins the time zone applied to dates that carry no
	// UTC offset. If nil, the zone is inferred per document from the
	// feed language and the origin URL's country domain, falling back
	// to UTC.
	DefaultTimezone *time.Location
	// SkipEntries maps only feed-level metadata, leaving Entries nil.
	SkipEntries bool
	// SkipSourceResolution leaves item source elements unresolved
	// instead of fetching the documents they reference.
	SkipSourceResolution bool
	// Format forces a specific mapping engine instead of detecting one
	// from the document root.
	Format Format
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) fetcher() Fetcher {
	if p.Fetcher != nil {
		return p.Fetcher
	}
	return crawler.DefaultClient
}

// ParseResult contains the parsed feed and metadata about the input it
// came from.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read
	// from. If the source was not a file path or URL, this is the name
	// of the method that produced the result.
	SourcePath string
	// SourceURL is the origin URL used for relative reference
	// resolution and synthesized identifiers. Empty for in-memory and
	// file inputs unless the caller provided one.
	SourceURL string
	// Format is the detected syndication format.
	Format Format
	// Feed is the canonical feed mapped from the document.
	Feed *feed.Feed
	// Hint is a crawler-facing advisory value some engines produce.
	// Reserved for the crawler package; currently always nil.
	Hint any
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses a feed document from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
// For local files, the file is read and parsed.
func (p *Parser) Parse(feedPath string) (*ParseResult, error) {
	return p.ParseContext(context.Background(), feedPath)
}

// ParseContext is Parse with a caller-supplied context governing the
// fetch and any nested source resolution.
func (p *Parser) ParseContext(ctx context.Context, feedPath string) (*ParseResult, error) {
	var (
		data        []byte
		err         error
		sourceURL   string
		contentType string
	)
	loadStart := time.Now()
	if isURL(feedPath) {
		data, contentType, err = p.fetcher().Fetch(ctx, feedPath)
		sourceURL = feedPath
	} else {
		data, err = os.ReadFile(feedPath)
		if err != nil {
			err = fmt.Errorf("parser: failed to read file: %w", err)
		}
	}
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.parseDocument(ctx, data, sourceURL, !p.SkipEntries)
	if err != nil {
		return nil, err
	}
	if hint := detectFormatFromMediaType(contentType); hint != FormatUnknown && hint != res.Format {
		p.log().Debug("served media type disagrees with detected format",
			"mediaType", contentType, "format", res.Format.String())
	}
	res.SourcePath = feedPath
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses a feed document from an io.Reader. sourceURL is the
// document's origin and may be empty when unknown.
func (p *Parser) ParseReader(r io.Reader, sourceURL string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data, sourceURL)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader"
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a feed document from a byte slice. sourceURL is the
// document's origin and may be empty when unknown.
func (p *Parser) ParseBytes(data []byte, sourceURL string) (*ParseResult, error) {
	res, err := p.parseDocument(context.Background(), data, sourceURL, !p.SkipEntries)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes"
	return res, nil
}

// parseEngine maps one parsed document tree onto the canonical model.
type parseEngine func(ctx context.Context, doc *etree.Document, sourceURL string, parseEntries bool) (*feed.Feed, any, error)

func (p *Parser) engineFor(format Format) (parseEngine, error) {
	switch format {
	case FormatRSS2:
		return p.parseRSS2, nil
	case FormatRSS1:
		return p.parseRSS1, nil
	case FormatAtom:
		return p.parseAtom, nil
	}
	return nil, &feederrors.UnknownFormatError{
		Message: fmt.Sprintf("no engine for format %q", format),
	}
}

// parseDocument runs the full pipeline on in-memory data: encoding
// normalization, tree parsing, format detection and mapping.
func (p *Parser) parseDocument(ctx context.Context, data []byte, sourceURL string, parseEntries bool) (*ParseResult, error) {
	doc, err := loadTree(data, sourceURL)
	if err != nil {
		return nil, err
	}
	format := p.Format
	if format == FormatUnknown {
		format, err = detectRoot(doc, sourceURL)
		if err != nil {
			return nil, err
		}
	}
	engine, err := p.engineFor(format)
	if err != nil {
		return nil, err
	}
	p.log().Debug("parsing feed document",
		"format", format.String(), "url", sourceURL, "size", len(data))
	f, hint, err := engine(ctx, doc, sourceURL, parseEntries)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		SourceURL:  sourceURL,
		Format:     format,
		Feed:       f,
		Hint:       hint,
		SourceSize: int64(len(data)),
	}, nil
}

// loadTree normalizes the document encoding and parses it into an
// element tree. The normalizer rewrites everything to UTF-8 up front, so
// the tree parser runs with a pass-through charset reader and never
// consults the declared encoding itself.
func loadTree(data []byte, sourceURL string) (*etree.Document, error) {
	normalized, err := encodingutil.NormalizeXML(data)
	if err != nil {
		return nil, &feederrors.ParseError{
			URL:     sourceURL,
			Message: "cannot normalize document encoding",
			Cause:   err,
		}
	}
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromBytes(normalized); err != nil {
		return nil, &feederrors.ParseError{
			URL:     sourceURL,
			Message: "malformed document",
			Cause:   err,
		}
	}
	if doc.Root() == nil {
		return nil, &feederrors.ParseError{
			URL:     sourceURL,
			Message: "document has no root element",
		}
	}
	return doc, nil
}

// newSession builds the session for one document: the origin URL, the
// inferred default time zone and the per-call collaborators.
func (p *Parser) newSession(ctx context.Context, sourceURL, language string) Session {
	s := NewSession(sourceURL, p.timezoneFor(language, sourceURL))
	s = s.WithContext(ctx).WithLogger(p.log())
	if !p.SkipSourceResolution {
		s = s.WithResolver(p)
	}
	return s
}

// timezoneFor picks the zone for dates without an offset: an explicit
// DefaultTimezone wins, then the document language, then the origin
// host's country domain, then UTC.
func (p *Parser) timezoneFor(language, sourceURL string) *time.Location {
	if p.DefaultTimezone != nil {
		return p.DefaultTimezone
	}
	host := ""
	if u, err := url.Parse(sourceURL); err == nil {
		host = u.Hostname()
	}
	return tzutil.Guess(language, host)
}

// ResolveSource implements SourceResolver by fetching the referenced
// document and parsing it with entry parsing disabled. Item source
// elements only occur inside entries, so a resolved source can never
// trigger further resolution.
func (p *Parser) ResolveSource(ctx context.Context, sourceURL string) (*feed.Feed, error) {
	p.log().Debug("resolving source feed", "url", sourceURL)
	data, _, err := p.fetcher().Fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	res, err := p.parseDocument(ctx, data, sourceURL, false)
	if err != nil {
		return nil, err
	}
	return res.Feed, nil
}
