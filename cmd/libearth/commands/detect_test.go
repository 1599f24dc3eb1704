package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDetectFlags(t *testing.T) {
	fs, flags := SetupDetectFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"-q", "feed.xml"}))
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "feed.xml", fs.Arg(0))
	})
}

func TestHandleDetect_NoArgs(t *testing.T) {
	err := HandleDetect([]string{})
	assert.Error(t, err)
}

func TestHandleDetect_Help(t *testing.T) {
	err := HandleDetect([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleDetect_FileNotFound(t *testing.T) {
	err := HandleDetect([]string{"no-such-feed.xml"})
	assert.Error(t, err)
}

func TestHandleDetect_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body/></html>"), 0o600))

	err := HandleDetect([]string{"-q", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detecting format")
}
