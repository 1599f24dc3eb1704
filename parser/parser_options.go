package parser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Kjwon15/libearth/feederrors"
	"github.com/Kjwon15/libearth/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	ctx              context.Context
	fetcher          Fetcher
	logger           Logger
	defaultTimezone  *time.Location
	entryParsing     bool
	sourceResolution bool
	format           Format

	// Source identification
	sourceURL  *string // Origin for reader and byte inputs
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses a feed document using functional options. This
// provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("https://example.com/feed.xml"),
//	    parser.WithSourceResolution(false),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Fetcher:              cfg.fetcher,
		Logger:               cfg.logger,
		DefaultTimezone:      cfg.defaultTimezone,
		SkipEntries:          !cfg.entryParsing,
		SkipSourceResolution: !cfg.sourceResolution,
		Format:               cfg.format,
	}

	ctx := cfg.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	sourceURL := ""
	if cfg.sourceURL != nil {
		sourceURL = *cfg.sourceURL
	}

	// Route to the appropriate parsing method based on input source
	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.ParseContext(ctx, *cfg.filePath)
	case cfg.reader != nil:
		data, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read data: %w", err)
		}
		result, parseErr = p.parseDocument(ctx, data, sourceURL, !p.SkipEntries)
		if result != nil {
			result.SourcePath = "ParseReader"
		}
	case cfg.bytes != nil:
		result, parseErr = p.parseDocument(ctx, cfg.bytes, sourceURL, !p.SkipEntries)
		if result != nil {
			result.SourcePath = "ParseBytes"
		}
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("parser: no input source specified")
	}

	if parseErr != nil {
		return result, parseErr
	}

	// Apply source name override if specified
	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		// Set defaults to match Parser's zero-value behavior
		entryParsing:     true,
		sourceResolution: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &feederrors.ConfigError{Option: "reader", Message: "cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &feederrors.ConfigError{Option: "bytes", Message: "cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceURL sets the document origin used for relative reference
// resolution, time zone inference and synthesized identifiers. Only
// meaningful with WithReader and WithBytes; file and URL inputs carry
// their own origin.
func WithSourceURL(url string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceURL = &url
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded in the result
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &feederrors.ConfigError{Option: "sourceName", Message: "cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}

// WithContext sets the context governing fetches and nested source
// resolution.
// Default: context.Background()
func WithContext(ctx context.Context) Option {
	return func(cfg *parseConfig) error {
		if ctx == nil {
			return &feederrors.ConfigError{Option: "context", Message: "cannot be nil"}
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithFetcher sets the fetcher used for URL inputs and item source
// elements.
// Default: crawler.DefaultClient
func WithFetcher(f Fetcher) Option {
	return func(cfg *parseConfig) error {
		cfg.fetcher = f
		return nil
	}
}

// WithLogger sets the structured logger for debug output
// Default: logging disabled
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithDefaultTimezone pins the time zone applied to dates that carry no
// UTC offset, instead of inferring one from the document
func WithDefaultTimezone(loc *time.Location) Option {
	return func(cfg *parseConfig) error {
		if loc == nil {
			return &feederrors.ConfigError{Option: "defaultTimezone", Message: "cannot be nil"}
		}
		cfg.defaultTimezone = loc
		return nil
	}
}

// WithEntryParsing enables or disables mapping of entries; when disabled
// only feed-level metadata is mapped and Entries stays nil.
// Default: true
func WithEntryParsing(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.entryParsing = enabled
		return nil
	}
}

// WithSourceResolution enables or disables fetching of the documents
// item source elements reference. When disabled those elements are
// skipped.
// Default: true
func WithSourceResolution(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceResolution = enabled
		return nil
	}
}

// WithFormat forces a specific mapping engine instead of detecting one
// from the document root.
// Default: detect from the document
func WithFormat(f Format) Option {
	return func(cfg *parseConfig) error {
		switch f {
		case FormatUnknown, FormatRSS2, FormatRSS1, FormatAtom:
			cfg.format = f
			return nil
		}
		return &feederrors.ConfigError{Option: "format", Value: int(f), Message: "unsupported format"}
	}
}
