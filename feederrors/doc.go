// Package feederrors provides structured error types for the libearth library.
//
// Import path: github.com/Kjwon15/libearth/feederrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: malformed documents (bad XML, missing channel, undecodable bytes)
//   - [FetchError]: network failures while retrieving a document or a nested source
//   - [UnknownFormatError]: bytes that no supported syndication format matches
//   - [ConfigError]: invalid parser configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrFetch]: Matches any [FetchError]
//   - [ErrUnknownFormat]: Matches any [UnknownFormatError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("feed.xml"))
//	if errors.Is(err, feederrors.ErrParse) {
//	    // Handle malformed document
//	}
//
// Extract error details with errors.As():
//
//	var fetchErr *feederrors.FetchError
//	if errors.As(err, &fetchErr) {
//	    fmt.Printf("failed to retrieve %s (status %d)\n", fetchErr.URL, fetchErr.StatusCode)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var fetchErr *feederrors.FetchError
//	if errors.As(err, &fetchErr) {
//	    if errors.Is(fetchErr.Cause, context.DeadlineExceeded) {
//	        // The remote host was too slow; retry with a longer timeout.
//	    }
//	}
package feederrors
