package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kjwon15/libearth/feed"
)

func TestMakeLegalIdentifierFallsBackToOrigin(t *testing.T) {
	f := &feed.Feed{}
	makeLegal(f, "http://example.com/feed.xml", "application/rss+xml")
	assert.Equal(t, "http://example.com/feed.xml", f.ID)
}

func TestMakeLegalKeepsDeclaredIdentifier(t *testing.T) {
	f := &feed.Feed{ID: "urn:uuid:5c0cd0bc-b453-4e1a-9e91-5b7a9e4a0001"}
	makeLegal(f, "http://example.com/feed.xml", "application/rss+xml")
	assert.Equal(t, "urn:uuid:5c0cd0bc-b453-4e1a-9e91-5b7a9e4a0001", f.ID)
}

func TestMakeLegalSynthesizesSelfLink(t *testing.T) {
	f := &feed.Feed{}
	makeLegal(f, "http://example.com/feed.xml", "application/atom+xml")

	self := f.LinkByRelation(feed.RelationSelf)
	require.NotNil(t, self)
	assert.Equal(t, "http://example.com/feed.xml", self.URI)
	assert.Equal(t, "application/atom+xml", self.MediaType)
}

func TestMakeLegalKeepsDeclaredSelfLink(t *testing.T) {
	f := &feed.Feed{
		Links: []feed.Link{{
			URI:      "http://example.com/canonical.xml",
			Relation: feed.RelationSelf,
		}},
	}
	makeLegal(f, "http://mirror.example.com/feed.xml", "application/rss+xml")

	require.Len(t, f.Links, 1)
	assert.Equal(t, "http://example.com/canonical.xml", f.Links[0].URI)
}

func TestMakeLegalWithoutOrigin(t *testing.T) {
	f := &feed.Feed{}
	makeLegal(f, "", "application/rss+xml")
	assert.Empty(t, f.ID)
	assert.Nil(t, f.LinkByRelation(feed.RelationSelf))
}

func TestMakeLegalBackfillsEntryUpdated(t *testing.T) {
	published := time.Date(2021, 3, 1, 9, 0, 0, 0, time.UTC)
	dated := &feed.Entry{PublishedAt: &published}
	undated := &feed.Entry{}
	f := &feed.Feed{Entries: []*feed.Entry{dated, undated}}

	makeLegal(f, "", "application/rss+xml")

	require.NotNil(t, dated.UpdatedAt)
	assert.True(t, dated.UpdatedAt.Equal(published))
	assert.NotSame(t, dated.PublishedAt, dated.UpdatedAt)
	assert.Nil(t, undated.UpdatedAt)
}

func TestMakeLegalKeepsEntryUpdated(t *testing.T) {
	published := time.Date(2021, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2021, 4, 1, 9, 0, 0, 0, time.UTC)
	entry := &feed.Entry{PublishedAt: &published, UpdatedAt: &updated}
	f := &feed.Feed{Entries: []*feed.Entry{entry}}

	makeLegal(f, "", "application/rss+xml")

	assert.True(t, entry.UpdatedAt.Equal(updated))
}

func TestMakeLegalFeedUpdatedFromNewestEntry(t *testing.T) {
	older := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2022, 6, 15, 12, 0, 0, 0, time.UTC)
	f := &feed.Feed{Entries: []*feed.Entry{
		{UpdatedAt: &older},
		{UpdatedAt: &newer},
	}}

	makeLegal(f, "", "application/rss+xml")

	require.NotNil(t, f.UpdatedAt)
	assert.True(t, f.UpdatedAt.Equal(newer))
}

func TestMakeLegalFeedUpdatedFromParseTime(t *testing.T) {
	f := &feed.Feed{}
	makeLegal(f, "", "application/rss+xml")

	require.NotNil(t, f.UpdatedAt)
	assert.WithinDuration(t, time.Now().UTC(), *f.UpdatedAt, 10*time.Second)
}

func TestMakeLegalKeepsFeedUpdated(t *testing.T) {
	declared := time.Date(2019, 7, 4, 0, 0, 0, 0, time.UTC)
	entry := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &feed.Feed{
		UpdatedAt: &declared,
		Entries:   []*feed.Entry{{UpdatedAt: &entry}},
	}

	makeLegal(f, "", "application/rss+xml")

	assert.True(t, f.UpdatedAt.Equal(declared))
}
