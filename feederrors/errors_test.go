package feederrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			URL:     "https://example.com/feed.xml",
			Element: "channel",
			Message: "invalid structure",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in https://example.com/feed.xml at <channel>: invalid structure: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with URL only", func(t *testing.T) {
		err := &ParseError{URL: "https://example.com/feed"}
		if err.Error() != "parse error in https://example.com/feed" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with element only", func(t *testing.T) {
		err := &ParseError{Element: "rss"}
		if err.Error() != "parse error at <rss>" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrFetch) {
			t.Error("ParseError should not match ErrFetch")
		}
		if errors.Is(err, ErrUnknownFormat) {
			t.Error("ParseError should not match ErrUnknownFormat")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{URL: "https://example.com/rss", Element: "item"})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.URL != "https://example.com/rss" {
			t.Errorf("unexpected url: %s", parseErr.URL)
		}
		if parseErr.Element != "item" {
			t.Errorf("unexpected element: %s", parseErr.Element)
		}
	})
}

func TestFetchError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &FetchError{
			URL:        "https://source.example.com/feed",
			StatusCode: 502,
			Message:    "upstream unavailable",
			Cause:      cause,
		}
		expected := "fetch error: https://source.example.com/feed (status 502): upstream unavailable: connection refused"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without status", func(t *testing.T) {
		err := &FetchError{URL: "https://example.com/feed"}
		if err.Error() != "fetch error: https://example.com/feed" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &FetchError{}
		if err.Error() != "fetch error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("network timeout")
		err := &FetchError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrFetch", func(t *testing.T) {
		err := &FetchError{URL: "https://example.com"}
		if !errors.Is(err, ErrFetch) {
			t.Error("FetchError should match ErrFetch")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &FetchError{}
		if errors.Is(err, ErrParse) {
			t.Error("FetchError should not match ErrParse")
		}
	})

	t.Run("As extracts FetchError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &FetchError{
			URL:        "https://example.com/a.xml",
			StatusCode: 404,
		})
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatal("errors.As should succeed")
		}
		if fetchErr.StatusCode != 404 {
			t.Errorf("unexpected status code: %d", fetchErr.StatusCode)
		}
	})
}

func TestUnknownFormatError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &UnknownFormatError{
			URL:     "https://example.com/page",
			RootTag: "html",
			Message: "no syndication markup found",
		}
		expected := "unknown format for https://example.com/page: root element <html>: no syndication markup found"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with root tag only", func(t *testing.T) {
		err := &UnknownFormatError{RootTag: "opml"}
		if err.Error() != "unknown format: root element <opml>" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &UnknownFormatError{}
		if err.Error() != "unknown format" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &UnknownFormatError{RootTag: "test"}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrUnknownFormat", func(t *testing.T) {
		err := &UnknownFormatError{RootTag: "html"}
		if !errors.Is(err, ErrUnknownFormat) {
			t.Error("UnknownFormatError should match ErrUnknownFormat")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &UnknownFormatError{}
		if errors.Is(err, ErrParse) {
			t.Error("UnknownFormatError should not match ErrParse")
		}
	})

	t.Run("As extracts UnknownFormatError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &UnknownFormatError{RootTag: "svg"})
		var fmtErr *UnknownFormatError
		if !errors.As(err, &fmtErr) {
			t.Fatal("errors.As should succeed")
		}
		if fmtErr.RootTag != "svg" {
			t.Errorf("unexpected root tag: %s", fmtErr.RootTag)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid value")
		err := &ConfigError{
			Option:  "timeout",
			Value:   -5,
			Message: "must be positive",
			Cause:   cause,
		}
		expected := "configuration error for timeout (value: -5): must be positive: invalid value"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with option only", func(t *testing.T) {
		err := &ConfigError{Option: "filePath"}
		expected := "configuration error for filePath"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with nil value excluded", func(t *testing.T) {
		err := &ConfigError{
			Option:  "input",
			Value:   nil,
			Message: "required",
		}
		expected := "configuration error for input: required"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("missing value")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ConfigError{}
		if errors.Is(err, ErrParse) {
			t.Error("ConfigError should not match ErrParse")
		}
	})

	t.Run("As extracts ConfigError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ConfigError{
			Option: "maxSize",
			Value:  1000,
		})
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatal("errors.As should succeed")
		}
		if cfgErr.Option != "maxSize" {
			t.Errorf("unexpected option: %s", cfgErr.Option)
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	sentinels := []error{
		ErrParse,
		ErrFetch,
		ErrUnknownFormat,
		ErrConfig,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}

func TestErrorChaining(t *testing.T) {
	t.Run("deeply wrapped ParseError", func(t *testing.T) {
		parseErr := &ParseError{URL: "https://example.com/feed", Message: "invalid"}
		wrapped1 := fmt.Errorf("layer 1: %w", parseErr)
		wrapped2 := fmt.Errorf("layer 2: %w", wrapped1)

		if !errors.Is(wrapped2, ErrParse) {
			t.Error("deeply wrapped ParseError should match ErrParse")
		}

		var extracted *ParseError
		if !errors.As(wrapped2, &extracted) {
			t.Fatal("errors.As should work through wrapping")
		}
		if extracted.URL != "https://example.com/feed" {
			t.Errorf("unexpected url: %s", extracted.URL)
		}
	})

	t.Run("error wrapping with Cause", func(t *testing.T) {
		rootCause := errors.New("network timeout")
		fetchErr := &FetchError{
			URL:   "http://example.com/source.xml",
			Cause: rootCause,
		}
		wrapped := fmt.Errorf("failed to load: %w", fetchErr)

		// Should be able to check for root cause
		if !errors.Is(wrapped, rootCause) {
			t.Error("should be able to find root cause through Unwrap chain")
		}
	})
}
