package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"http://example.com/feed.xml", true},
		{"https://example.com/feed.xml", true},
		{"feed.xml", false},
		{"/var/feeds/feed.xml", false},
		{"ftp://example.com/feed.xml", false},
		{"-", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsHTTPURL(tt.path); got != tt.want {
				t.Errorf("IsHTTPURL(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatFeedPath(t *testing.T) {
	if got := FormatFeedPath(StdinFilePath); got != "<stdin>" {
		t.Errorf("FormatFeedPath(%q) = %q, want %q", StdinFilePath, got, "<stdin>")
	}
	if got := FormatFeedPath("feed.xml"); got != "feed.xml" {
		t.Errorf("FormatFeedPath(%q) = %q, want %q", "feed.xml", got, "feed.xml")
	}
}

func TestReadDocument_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := os.WriteFile(path, []byte("<rss/>"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	data, err := ReadDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}
	if got := string(data); got != "<rss/>" {
		t.Errorf("ReadDocument() = %q, want %q", got, "<rss/>")
	}
}

func TestReadDocument_FileNotFound(t *testing.T) {
	_, err := ReadDocument(context.Background(), filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
