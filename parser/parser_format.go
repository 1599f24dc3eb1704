package parser

import (
	"fmt"
	"strings"
)

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	// Handle negative values
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	// Use proper binary unit notation (KiB, MiB, GiB, etc.)
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// detectFormatFromMediaType maps a Content-Type header to a format hint.
// Detection from the document root stays authoritative; the hint only
// feeds logging and tooling output.
func detectFormatFromMediaType(contentType string) Format {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case "application/rss+xml":
		return FormatRSS2
	case "application/rdf+xml":
		return FormatRSS1
	case "application/atom+xml":
		return FormatAtom
	}
	return FormatUnknown
}
