package parser

import (
	"time"

	"github.com/Kjwon15/libearth/feed"
)

// makeLegal repairs the cross-format invariants the canonical model
// expects but the source document may not provide: an identifier, a self
// link, per-entry updated times and a feed-level updated time.
//
// The identifier and self link derive from the origin URL; with no
// origin they are left for the caller. The feed updated time falls back
// to the newest entry time, and with no dated entries to the time of
// this parse.
func makeLegal(f *feed.Feed, origin, selfMediaType string) {
	if f.ID == "" {
		f.ID = origin
	}
	if origin != "" && !f.HasLinkRelation(feed.RelationSelf) {
		f.Links = append(f.Links, feed.Link{
			URI:       origin,
			Relation:  feed.RelationSelf,
			MediaType: selfMediaType,
		})
	}
	for _, entry := range f.Entries {
		if entry.UpdatedAt == nil && entry.PublishedAt != nil {
			ts := *entry.PublishedAt
			entry.UpdatedAt = &ts
		}
	}
	if f.UpdatedAt == nil {
		if latest, ok := f.LatestEntryTime(); ok {
			f.UpdatedAt = &latest
		} else {
			now := time.Now().UTC()
			f.UpdatedAt = &now
		}
	}
}
