package parser

import (
	"context"
	"strings"

	"github.com/beevik/etree"

	"github.com/Kjwon15/libearth/feed"
	"github.com/Kjwon15/libearth/feederrors"
)

// rss1Rules maps RDF Site Summary documents, RSS 1.0 and the Netscape
// 0.90 dialect. Item elements are siblings of the channel under the RDF
// root; metadata rides on Dublin Core elements.
var rss1Rules = ruleTable{
	{container: "channel", name: "title", field: FieldTitle, handler: parseTextValue},
	{container: "channel", name: "description", field: FieldSubtitle, handler: parseSubtitleValue},
	{container: "channel", name: "link", field: FieldLinks, handler: parseSimpleLink},
	{container: "channel", name: "rights", ns: []string{dcNS}, field: FieldRights, handler: parseTextValue},
	{container: "channel", name: "date", ns: []string{dcNS}, field: FieldUpdatedAt, handler: parseW3CDateTime},
	{container: "channel", name: "creator", ns: []string{dcNS}, field: FieldAuthors, handler: parsePerson},
	{container: "channel", name: "publisher", ns: []string{dcNS}, field: FieldContributors, handler: parsePerson},
	{container: "channel", name: "contributor", ns: []string{dcNS}, field: FieldContributors, handler: parsePerson},
	{container: "channel", name: "subject", ns: []string{dcNS}, field: FieldCategories, handler: parseDCSubject},
	{container: "channel", name: "link", ns: atomNSSet, field: FieldLinks, handler: parseAtomLink},

	{container: "item", name: "title", field: FieldTitle, handler: parseTextValue},
	{container: "item", name: "link", field: FieldLinks, handler: parseSimpleLink},
	{container: "item", name: "description", field: FieldContent, handler: parseContentValue},
	{container: "item", name: "encoded", ns: []string{contentNS}, field: FieldContent, handler: parseContentValue},
	{container: "item", name: "identifier", ns: []string{dcNS}, field: FieldID, handler: parseDCIdentifier},
	{container: "item", name: "date", ns: []string{dcNS}, field: FieldPublishedAt, handler: parseW3CDateTime},
	{container: "item", name: "creator", ns: []string{dcNS}, field: FieldAuthors, handler: parsePerson},
	{container: "item", name: "contributor", ns: []string{dcNS}, field: FieldContributors, handler: parsePerson},
	{container: "item", name: "subject", ns: []string{dcNS}, field: FieldCategories, handler: parseDCSubject},
	{container: "item", name: "rights", ns: []string{dcNS}, field: FieldRights, handler: parseTextValue},
}

// parseDCSubject maps a dc:subject element to a category with no scheme.
func parseDCSubject(el *etree.Element, s Session) (any, Session, error) {
	term := elementText(el)
	if term == "" {
		return nil, s, nil
	}
	return feed.Category{Term: term}, s, nil
}

// parseDCIdentifier maps a dc:identifier element to the entry identifier
// verbatim.
func parseDCIdentifier(el *etree.Element, s Session) (any, Session, error) {
	id := elementText(el)
	if id == "" {
		return nil, s, nil
	}
	return id, s, nil
}

// rdfAbout returns the element's rdf:about attribute, the resource URI
// RDF dialects identify channels and items with.
func rdfAbout(el *etree.Element) string {
	about, _ := attrValue(el, "about")
	return strings.TrimSpace(about)
}

// parseRSS1 maps an RDF Site Summary document onto the canonical feed
// model.
func (p *Parser) parseRSS1(ctx context.Context, doc *etree.Document, sourceURL string, parseEntries bool) (*feed.Feed, any, error) {
	root := doc.Root()
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, nil, &feederrors.ParseError{
			URL:     sourceURL,
			Element: root.Tag,
			Message: "document has no channel element",
		}
	}
	s := p.newSession(ctx, sourceURL, channelLanguage(channel))
	f := &feed.Feed{}
	f.ID = rdfAbout(channel)
	s, err := rss1Rules.dispatch("channel", channel, s, f)
	if err != nil {
		return nil, nil, err
	}
	if parseEntries {
		f.Entries = []*feed.Entry{}
		items := root.SelectElements("item")
		if len(items) == 0 {
			// The 0.90 dialect nests items inside the channel.
			items = channel.SelectElements("item")
		}
		for _, item := range items {
			entry := &feed.Entry{}
			entry.ID = rdfAbout(item)
			s, err = rss1Rules.dispatch("item", item, s, entry)
			if err != nil {
				return nil, nil, err
			}
			f.Entries = append(f.Entries, entry)
		}
	}
	makeLegal(f, sourceURL, "application/rss+xml")
	return f, nil, nil
}
