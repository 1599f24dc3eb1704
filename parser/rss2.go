package parser

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/Kjwon15/libearth/feed"
	"github.com/Kjwon15/libearth/feederrors"
)

// Namespace URIs the engines understand.
const (
	atomNS       = "http://www.w3.org/2005/Atom"
	atomLegacyNS = "http://purl.org/atom/ns#"
	contentNS    = "http://purl.org/rss/1.0/modules/content/"
	dcNS         = "http://purl.org/dc/elements/1.1/"
	rss1NS       = "http://purl.org/rss/1.0/"
	rdfNS        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// atomNSSet admits both the RFC 4287 namespace and the pre-1.0 namespace
// still found in old documents.
var atomNSSet = []string{atomNS, atomLegacyNS}

// rss2Rules maps RSS 2.0 and its 0.9x ancestors. The channel element
// produces the feed, each item element produces an entry. Table order is
// write order when two rules accept the same child.
var rss2Rules = ruleTable{
	{container: "channel", name: "title", field: FieldTitle, handler: parseTextValue},
	{container: "channel", name: "description", field: FieldSubtitle, handler: parseSubtitleValue},
	{container: "channel", name: "copyright", field: FieldRights, handler: parseTextValue},
	{container: "channel", name: "pubDate", field: FieldUpdatedAt, handler: parseDateTime},
	{container: "channel", name: "lastBuildDate", field: FieldUpdatedAt, handler: parseDateTime},
	{container: "channel", name: "managingEditor", field: FieldContributors, handler: parsePerson},
	{container: "channel", name: "webMaster", field: FieldContributors, handler: parsePerson},
	{container: "channel", name: "category", field: FieldCategories, handler: parseCategory},
	{container: "channel", name: "generator", field: FieldGenerator, handler: parseGenerator},
	{container: "channel", name: "image", field: FieldLogo, handler: parseImage},
	{container: "channel", name: "link", field: FieldLinks, handler: parseSimpleLink},
	{container: "channel", name: "link", ns: atomNSSet, field: FieldLinks, handler: parseAtomLink},

	{container: "item", name: "title", field: FieldTitle, handler: parseTextValue},
	{container: "item", name: "link", field: FieldLinks, handler: parseSimpleLink},
	{container: "item", name: "description", field: FieldContent, handler: parseContentValue},
	{container: "item", name: "encoded", ns: []string{contentNS}, field: FieldContent, handler: parseContentValue},
	{container: "item", name: "author", field: FieldAuthors, handler: parsePerson},
	{container: "item", name: "creator", ns: []string{dcNS}, field: FieldAuthors, handler: parsePerson},
	{container: "item", name: "category", field: FieldCategories, handler: parseCategory},
	{container: "item", name: "pubDate", field: FieldPublishedAt, handler: parseDateTime},
	{container: "item", name: "guid", field: FieldID, handler: parseGUID},
	{container: "item", name: "enclosure", field: FieldLinks, handler: parseEnclosure},
	{container: "item", name: "comments", field: FieldLinks, handler: parseComments},
	{container: "item", name: "source", field: FieldSource, handler: parseItemSource},
}

// parseCategory maps a category element. The element text is the term
// and the domain attribute, when present, the scheme.
func parseCategory(el *etree.Element, s Session) (any, Session, error) {
	term := elementText(el)
	if term == "" {
		return nil, s, nil
	}
	return feed.Category{Term: term, Scheme: el.SelectAttrValue("domain", "")}, s, nil
}

// parseGenerator maps the generator element. A value that parses as an
// http or https URL becomes the generator's URI; anything else is kept
// as its display value.
func parseGenerator(el *etree.Element, s Session) (any, Session, error) {
	text := elementText(el)
	if text == "" {
		return nil, s, nil
	}
	if u, err := url.Parse(text); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return &feed.Generator{URI: text}, s, nil
	}
	return &feed.Generator{Value: text}, s, nil
}

// parseImage maps the channel image block to the feed logo using its url
// child.
func parseImage(el *etree.Element, s Session) (any, Session, error) {
	urlEl := el.SelectElement("url")
	if urlEl == nil {
		return nil, s, nil
	}
	target := elementText(urlEl)
	if target == "" {
		return nil, s, nil
	}
	return resolveRef(s, target), s, nil
}

// parseAtomLink maps a namespace-qualified atom:link element with its
// href, rel and type attributes. The relation defaults to alternate.
func parseAtomLink(el *etree.Element, s Session) (any, Session, error) {
	link := feed.Link{
		URI:       resolveRef(s, el.SelectAttrValue("href", "")),
		Relation:  el.SelectAttrValue("rel", ""),
		MediaType: el.SelectAttrValue("type", ""),
		Title:     el.SelectAttrValue("title", ""),
	}
	if link.Relation == "" {
		link.Relation = feed.RelationAlternate
	}
	if length := el.SelectAttrValue("length", ""); length != "" {
		if n, err := strconv.ParseInt(length, 10, 64); err == nil && n >= 0 {
			link.ByteSize = n
		}
	}
	return link, s, nil
}

// parseEnclosure maps an enclosure element to a link whose relation is
// always enclosure, whatever attributes the element carries.
func parseEnclosure(el *etree.Element, s Session) (any, Session, error) {
	link := feed.Link{
		Relation:  feed.RelationEnclosure,
		URI:       resolveRef(s, el.SelectAttrValue("url", "")),
		MediaType: el.SelectAttrValue("type", ""),
	}
	if length := el.SelectAttrValue("length", ""); length != "" {
		if n, err := strconv.ParseInt(length, 10, 64); err == nil && n >= 0 {
			link.ByteSize = n
		}
	}
	return link, s, nil
}

// parseComments maps the comments element to a link with the fixed
// discussion relation.
func parseComments(el *etree.Element, s Session) (any, Session, error) {
	target := elementText(el)
	if target == "" {
		return nil, s, nil
	}
	return feed.Link{URI: resolveRef(s, target), Relation: feed.RelationDiscussion}, s, nil
}

var uuidPattern = regexp.MustCompile(`^\{?[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\}?$`)

// classifyGUID turns a raw guid value into a usable identifier. An
// absolute http or https URL not explicitly marked as a non-permalink is
// used verbatim; a UUID, braced or not, is canonicalized into a urn:uuid
// identifier; everything else yields the empty string, leaving the
// identifier for the normalization pass to synthesize.
func classifyGUID(text, permalink string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return ""
	case isHTTPURL(text) && !strings.EqualFold(permalink, "false"):
		return text
	case uuidPattern.MatchString(text):
		id, err := uuid.Parse(strings.Trim(text, "{}"))
		if err != nil {
			return ""
		}
		return "urn:uuid:" + id.String()
	}
	return ""
}

func isHTTPURL(text string) bool {
	return strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://")
}

// parseGUID maps the guid element onto the entry identifier. Unusable
// guids are skipped rather than failing the entry.
func parseGUID(el *etree.Element, s Session) (any, Session, error) {
	permalink, _ := attrValue(el, "isPermaLink")
	id := classifyGUID(elementText(el), permalink)
	if id == "" {
		return nil, s, nil
	}
	return id, s, nil
}

// parseItemSource resolves the source element by fetching the document
// its url attribute names and parsing it with entry parsing disabled. A
// resolution failure fails the whole parse. Without a url attribute or a
// configured resolver the element is skipped.
func parseItemSource(el *etree.Element, s Session) (any, Session, error) {
	target := strings.TrimSpace(el.SelectAttrValue("url", ""))
	if target == "" {
		return nil, s, nil
	}
	resolver := s.resolver()
	if resolver == nil {
		s.logger().Warn("skipping source element, source resolution disabled", "url", target)
		return nil, s, nil
	}
	src, err := resolver.ResolveSource(s.Context(), resolveRef(s, target))
	if err != nil {
		return nil, s, err
	}
	return src, s, nil
}

// channelLanguage returns the text of the channel's language element, in
// any namespace, for time zone inference.
func channelLanguage(channel *etree.Element) string {
	for _, el := range channel.ChildElements() {
		if el.Tag == "language" {
			return elementText(el)
		}
	}
	return ""
}

// parseRSS2 maps an RSS 2.0 document, or one of its 0.9x ancestors, onto
// the canonical feed model.
func (p *Parser) parseRSS2(ctx context.Context, doc *etree.Document, sourceURL string, parseEntries bool) (*feed.Feed, any, error) {
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
	s, err := rss2Rules.dispatch("channel", channel, s, f)
	if err != nil {
		return nil, nil, err
	}
	if parseEntries {
		f.Entries = []*feed.Entry{}
		for _, item := range channel.SelectElements("item") {
			entry := &feed.Entry{}
			s, err = rss2Rules.dispatch("item", item, s, entry)
			if err != nil {
				return nil, nil, err
			}
			f.Entries = append(f.Entries, entry)
		}
	}
	makeLegal(f, sourceURL, "application/rss+xml")
	return f, nil, nil
}
