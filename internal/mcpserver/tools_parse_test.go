package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parseToolFeed = `<?xml version="1.0"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>Space Exploration Weekly</title>
    <description>Orbital mechanics for everyone</description>
    <link>http://space.example.com/</link>
    <atom:link rel="self" href="http://space.example.com/rss.xml" type="application/rss+xml"/>
    <managingEditor>editor@space.example.com (Pat Jones)</managingEditor>
    <pubDate>Tue, 02 Mar 2021 08:00:00 GMT</pubDate>
    <item>
      <title>Launch window opens</title>
      <link>http://space.example.com/launch</link>
      <guid isPermaLink="true">http://space.example.com/launch</guid>
      <pubDate>Mon, 01 Mar 2021 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Orbit achieved</title>
      <link>http://space.example.com/orbit</link>
      <pubDate>Tue, 02 Mar 2021 08:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestParseTool_Summary(t *testing.T) {
	feedCache.reset()
	input := parseInput{
		Feed: feedInput{Content: parseToolFeed},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "rss2", output.Format)
	assert.Equal(t, "Space Exploration Weekly", output.Title)
	assert.Equal(t, "Orbital mechanics for everyone", output.Subtitle)
	assert.Equal(t, "2021-03-02T08:00:00Z", output.UpdatedAt)
	assert.Equal(t, 2, output.EntryCount)
	assert.Equal(t, "http://space.example.com/rss.xml", output.SelfURL)
	assert.Equal(t, "http://space.example.com/", output.AlternateURL)
	assert.Empty(t, output.FullDocument)
}

func TestParseTool_Full(t *testing.T) {
	feedCache.reset()
	input := parseInput{
		Feed: feedInput{Content: parseToolFeed},
		Full: true,
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.NotEmpty(t, output.FullDocument)
	assert.Contains(t, output.FullDocument, "Space Exploration Weekly")
	assert.Contains(t, output.FullDocument, "Launch window opens")
}

func TestParseTool_NoEntries(t *testing.T) {
	feedCache.reset()
	input := parseInput{
		Feed:      feedInput{Content: parseToolFeed},
		NoEntries: true,
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "Space Exploration Weekly", output.Title)
	assert.Zero(t, output.EntryCount)
}

func TestParseTool_InvalidDocument(t *testing.T) {
	feedCache.reset()
	input := parseInput{
		Feed: feedInput{Content: "<rss><channel>"},
	}
	result, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Format)
}

func TestParseTool_TruncatesLongSubtitle(t *testing.T) {
	feedCache.reset()
	longDesc := strings.Repeat("A", 500)
	doc := `<rss version="2.0"><channel>
	  <title>t</title>
	  <description>` + longDesc + `</description>
	</channel></rss>`
	input := parseInput{
		Feed: feedInput{Content: doc},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(output.Subtitle), summaryTextLimit+3)
	assert.True(t, strings.HasSuffix(output.Subtitle, "..."))
}
