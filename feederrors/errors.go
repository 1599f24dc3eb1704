// Package feederrors provides structured error types for libearth.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: malformed documents (bad XML, missing channel, undecodable bytes)
//   - FetchError: network failures while retrieving a document or a nested source
//   - UnknownFormatError: bytes that no supported syndication format matches
//   - ConfigError: invalid parser configuration or input options
//
// # Usage with errors.As
//
//	result, err := parser.ParseWithOptions(parser.WithURL("https://example.com/feed"))
//	if err != nil {
//	    var fetchErr *feederrors.FetchError
//	    if errors.As(err, &fetchErr) {
//	        // Retry later; the document itself may be fine.
//	    }
//	}
package feederrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a malformed document.
	ErrParse = errors.New("parse error")

	// ErrFetch indicates a network retrieval failure.
	ErrFetch = errors.New("fetch error")

	// ErrUnknownFormat indicates the document matched no supported format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a syndication document.
// This includes XML deserialization errors, undecodable character data,
// and structural issues such as an RSS document without a channel element.
type ParseError struct {
	// URL is the document origin, if known
	URL string
	// Element is the tag of the element being handled when the failure
	// occurred (empty if the document never produced a usable tree)
	Element string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.URL != "" {
		msg += " in " + e.URL
	}
	if e.Element != "" {
		msg += fmt.Sprintf(" at <%s>", e.Element)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FetchError represents a failure to retrieve a document over the network.
// Resolving a nested <source> element fetches its URL; when that retrieval
// fails the enclosing parse fails with a FetchError.
type FetchError struct {
	// URL is the address that could not be retrieved
	URL string
	// StatusCode is the HTTP status received (0 if the request never
	// completed)
	StatusCode int
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch error"
	if e.URL != "" {
		msg += ": " + e.URL
	}
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// UnknownFormatError indicates that format detection inspected a document
// and matched no supported syndication format.
type UnknownFormatError struct {
	// URL is the document origin, if known
	URL string
	// RootTag is the tag of the document root element (empty when the
	// document had no parseable root)
	RootTag string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *UnknownFormatError) Error() string {
	msg := "unknown format"
	if e.URL != "" {
		msg += " for " + e.URL
	}
	if e.RootTag != "" {
		msg += fmt.Sprintf(": root element <%s>", e.RootTag)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnknownFormatError has no underlying cause.
func (e *UnknownFormatError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
