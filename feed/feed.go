// Package feed defines the canonical Atom-like data model that every
// supported syndication format is translated into.
//
// Parsers populate these records field by field; downstream consumers only
// ever see this one representation regardless of whether the document on
// the wire was RSS 2.0, RSS 1.0, or Atom. The model is deliberately plain:
// exported fields, no behavior beyond small read-only helpers, and JSON and
// YAML tags for the CLI and MCP surfaces.
package feed

import "time"

// Text type values for Text.Type.
const (
	TypeText = "text"
	TypeHTML = "html"
)

// Link relation values assigned by the parsers. Formats without an explicit
// relation concept get these fixed values.
const (
	RelationAlternate  = "alternate"
	RelationSelf       = "self"
	RelationEnclosure  = "enclosure"
	RelationDiscussion = "discussion"
)

// Text is a human-readable text construct with an associated type.
type Text struct {
	// Type is either "text" or "html". Empty means "text".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Value is the raw character data, unescaped but not sanitized.
	Value string `json:"value" yaml:"value"`
}

// Person identifies an author or contributor.
type Person struct {
	Name  string `json:"name" yaml:"name"`
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Link is a reference to a web resource. Enclosures and comment pages are
// represented as links with the relation forced to RelationEnclosure or
// RelationDiscussion respectively.
type Link struct {
	URI       string `json:"uri" yaml:"uri"`
	Relation  string `json:"relation,omitempty" yaml:"relation,omitempty"`
	MediaType string `json:"media_type,omitempty" yaml:"media_type,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	// ByteSize is the advertised size of the target, when the source
	// format carries one (RSS enclosure length). Zero means unknown.
	ByteSize int64 `json:"byte_size,omitempty" yaml:"byte_size,omitempty"`
}

// Category is a term the feed or entry is filed under.
type Category struct {
	Term   string `json:"term" yaml:"term"`
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Generator identifies the software that produced the feed. Sources that
// publish a URL in place of a name populate URI instead of Value.
type Generator struct {
	URI     string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Content is the body of an entry. SourceURI is set when the body lives at
// an external location instead of inline.
type Content struct {
	Text      `yaml:",inline"`
	SourceURI string `json:"source_uri,omitempty" yaml:"source_uri,omitempty"`
}

// Feed is the canonical channel-level entity.
type Feed struct {
	// ID is a permanent, universally unique identifier. Parsers that find
	// no usable identifier leave it empty; normalization derives one from
	// the origin URL.
	ID           string     `json:"id" yaml:"id"`
	Title        *Text      `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle     *Text      `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Rights       *Text      `json:"rights,omitempty" yaml:"rights,omitempty"`
	Links        []Link     `json:"links,omitempty" yaml:"links,omitempty"`
	Authors      []Person   `json:"authors,omitempty" yaml:"authors,omitempty"`
	Contributors []Person   `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	Categories   []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	Generator    *Generator `json:"generator,omitempty" yaml:"generator,omitempty"`
	Logo         string     `json:"logo,omitempty" yaml:"logo,omitempty"`
	Icon         string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	// Entries is non-nil (possibly empty) whenever entry parsing was
	// requested, and nil when it was disabled (nested source feeds).
	Entries []*Entry `json:"entries" yaml:"entries"`
}

// Entry is the canonical item-level entity.
type Entry struct {
	ID           string     `json:"id" yaml:"id"`
	Title        *Text      `json:"title,omitempty" yaml:"title,omitempty"`
	Rights       *Text      `json:"rights,omitempty" yaml:"rights,omitempty"`
	Links        []Link     `json:"links,omitempty" yaml:"links,omitempty"`
	Authors      []Person   `json:"authors,omitempty" yaml:"authors,omitempty"`
	Contributors []Person   `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	Categories   []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty" yaml:"published_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Summary      *Text      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Content      *Content   `json:"content,omitempty" yaml:"content,omitempty"`
	// Source is the metadata of the feed this entry was republished from,
	// parsed with entry parsing disabled (Source.Entries is nil).
	Source *Feed `json:"source,omitempty" yaml:"source,omitempty"`
}

// HasLinkRelation reports whether any link carries the given relation.
func (f *Feed) HasLinkRelation(relation string) bool {
	for _, l := range f.Links {
		if l.Relation == relation {
			return true
		}
	}
	return false
}

// LinkByRelation returns the first link carrying the given relation, or
// nil when none does.
func (f *Feed) LinkByRelation(relation string) *Link {
	for i := range f.Links {
		if f.Links[i].Relation == relation {
			return &f.Links[i]
		}
	}
	return nil
}

// LinkByRelation returns the first entry link carrying the given
// relation, or nil when none does.
func (e *Entry) LinkByRelation(relation string) *Link {
	for i := range e.Links {
		if e.Links[i].Relation == relation {
			return &e.Links[i]
		}
	}
	return nil
}

// LatestEntryTime returns the most recent timestamp across all entries,
// preferring UpdatedAt over PublishedAt per entry. The second return value
// is false when no entry carries a timestamp.
func (f *Feed) LatestEntryTime() (time.Time, bool) {
	var latest time.Time
	found := false
	for _, e := range f.Entries {
		ts := e.UpdatedAt
		if ts == nil {
			ts = e.PublishedAt
		}
		if ts == nil {
			continue
		}
		if !found || ts.After(latest) {
			latest = *ts
			found = true
		}
	}
	return latest, found
}
