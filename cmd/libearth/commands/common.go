// Package commands provides CLI command handlers for libearth.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	libearth "github.com/Kjwon15/libearth"
	"github.com/Kjwon15/libearth/crawler"
	"github.com/Kjwon15/libearth/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid output '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// IsHTTPURL reports whether the path is an HTTP or HTTPS URL.
func IsHTTPURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ReadDocument loads the raw bytes of a feed document from a file path, an
// HTTP(S) URL, or stdin when the path is StdinFilePath.
func ReadDocument(ctx context.Context, feedPath string) ([]byte, error) {
	switch {
	case feedPath == StdinFilePath:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	case IsHTTPURL(feedPath):
		data, _, err := crawler.DefaultClient.Fetch(ctx, feedPath)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", feedPath, err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(feedPath)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		return data, nil
	}
}

// FormatFeedPath returns a display-friendly path for the feed document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatFeedPath(feedPath string) string {
	if feedPath == StdinFilePath {
		return "<stdin>"
	}
	return feedPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputFeedHeader outputs the common feed document header to stderr.
// This includes libearth version, document path, and syndication format.
func OutputFeedHeader(feedPath string, format parser.Format) {
	Writef(os.Stderr, "libearth version: %s\n", libearth.Version())
	Writef(os.Stderr, "Document: %s\n", FormatFeedPath(feedPath))
	Writef(os.Stderr, "Format: %s (%s)\n", format.String(), format.MediaType())
}

// OutputFeedStats outputs the common feed document statistics to stderr.
// This includes source size, entry count, and load time.
func OutputFeedStats(sourceSize int64, entryCount int, loadTime time.Duration) {
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	Writef(os.Stderr, "Entries: %d\n", entryCount)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}
