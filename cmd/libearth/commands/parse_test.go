package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupParseFlags(t *testing.T) {
	fs, flags := SetupParseFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatText, flags.Output, "expected Output to default to text")
		assert.False(t, flags.NoEntries, "expected NoEntries to be false by default")
		assert.Zero(t, flags.MaxEntries, "expected MaxEntries to be 0 by default")
		assert.Empty(t, flags.BaseURL, "expected BaseURL to be empty by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-output", "json", "-no-entries", "-max-entries", "5", "-base-url", "https://example.com/", "-q", "feed.xml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, FormatJSON, flags.Output)
		assert.True(t, flags.NoEntries, "expected NoEntries to be true")
		assert.Equal(t, 5, flags.MaxEntries)
		assert.Equal(t, "https://example.com/", flags.BaseURL)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "feed.xml", fs.Arg(0))
	})
}

func TestHandleParse_NoArgs(t *testing.T) {
	err := HandleParse([]string{})
	assert.Error(t, err)
}

func TestHandleParse_Help(t *testing.T) {
	err := HandleParse([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleParse_InvalidOutputFormat(t *testing.T) {
	err := HandleParse([]string{"-output", "xml", "feed.xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output")
}

func TestHandleParse_FileNotFound(t *testing.T) {
	err := HandleParse([]string{"-q", "no-such-feed.xml"})
	assert.Error(t, err)
}
