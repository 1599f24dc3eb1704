package parser

import (
	"context"

	"github.com/beevik/etree"

	"github.com/Kjwon15/libearth/feed"
)

// atomRules maps RFC 4287 Atom documents plus the element names the
// pre-1.0 drafts used. Atom needs no container namespace qualification:
// children of an Atom feed live in the feed's own namespace, which the
// empty namespace set accepts.
//
// Assigned in init because the source handler dispatches back through
// the table, which a package-level initializer would report as a cycle.
var atomRules ruleTable

func init() {
	atomRules = ruleTable{
		{container: "feed", name: "id", field: FieldID, handler: parseAtomID},
		{container: "feed", name: "title", field: FieldTitle, handler: parseAtomText},
		{container: "feed", name: "subtitle", field: FieldSubtitle, handler: parseAtomText},
		{container: "feed", name: "tagline", field: FieldSubtitle, handler: parseAtomText},
		{container: "feed", name: "rights", field: FieldRights, handler: parseAtomText},
		{container: "feed", name: "copyright", field: FieldRights, handler: parseAtomText},
		{container: "feed", name: "updated", field: FieldUpdatedAt, handler: parseW3CDateTime},
		{container: "feed", name: "modified", field: FieldUpdatedAt, handler: parseW3CDateTime},
		{container: "feed", name: "author", field: FieldAuthors, handler: parseAtomPerson},
		{container: "feed", name: "contributor", field: FieldContributors, handler: parseAtomPerson},
		{container: "feed", name: "category", field: FieldCategories, handler: parseAtomCategory},
		{container: "feed", name: "link", field: FieldLinks, handler: parseAtomLink},
		{container: "feed", name: "generator", field: FieldGenerator, handler: parseAtomGenerator},
		{container: "feed", name: "logo", field: FieldLogo, handler: parseAtomIRI},
		{container: "feed", name: "icon", field: FieldIcon, handler: parseAtomIRI},

		{container: "entry", name: "id", field: FieldID, handler: parseAtomID},
		{container: "entry", name: "title", field: FieldTitle, handler: parseAtomText},
		{container: "entry", name: "summary", field: FieldSummary, handler: parseAtomText},
		{container: "entry", name: "content", field: FieldContent, handler: parseAtomContent},
		{container: "entry", name: "rights", field: FieldRights, handler: parseAtomText},
		{container: "entry", name: "published", field: FieldPublishedAt, handler: parseW3CDateTime},
		{container: "entry", name: "issued", field: FieldPublishedAt, handler: parseW3CDateTime},
		{container: "entry", name: "updated", field: FieldUpdatedAt, handler: parseW3CDateTime},
		{container: "entry", name: "modified", field: FieldUpdatedAt, handler: parseW3CDateTime},
		{container: "entry", name: "author", field: FieldAuthors, handler: parseAtomPerson},
		{container: "entry", name: "contributor", field: FieldContributors, handler: parseAtomPerson},
		{container: "entry", name: "category", field: FieldCategories, handler: parseAtomCategory},
		{container: "entry", name: "link", field: FieldLinks, handler: parseAtomLink},
		{container: "entry", name: "source", field: FieldSource, handler: parseAtomSource},
	}
}

// parseAtomID maps an id element verbatim. Atom identifiers are IRIs and
// are never resolved against the document base.
func parseAtomID(el *etree.Element, s Session) (any, Session, error) {
	id := elementText(el)
	if id == "" {
		return nil, s, nil
	}
	return id, s, nil
}

// textConstruct reads an Atom text construct honoring its type attribute.
// XHTML constructs are flattened to their character data.
func textConstruct(el *etree.Element) feed.Text {
	switch el.SelectAttrValue("type", "") {
	case "html":
		return feed.Text{Type: feed.TypeHTML, Value: elementText(el)}
	case "xhtml":
		return feed.Text{Type: feed.TypeText, Value: deepText(el)}
	default:
		return feed.Text{Type: feed.TypeText, Value: elementText(el)}
	}
}

func parseAtomText(el *etree.Element, s Session) (any, Session, error) {
	t := textConstruct(el)
	return &t, s, nil
}

// parseAtomPerson reads a person construct from name, uri and email
// children. The pre-1.0 drafts used url instead of uri. A person without
// any of them is skipped.
func parseAtomPerson(el *etree.Element, s Session) (any, Session, error) {
	var person feed.Person
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "name":
			person.Name = elementText(child)
		case "uri", "url":
			person.URI = resolveRef(s, elementText(child))
		case "email":
			person.Email = elementText(child)
		}
	}
	if person.Name == "" {
		switch {
		case person.Email != "":
			person.Name = person.Email
		case person.URI != "":
			person.Name = person.URI
		default:
			return nil, s, nil
		}
	}
	return person, s, nil
}

// parseAtomCategory reads the term, scheme and label attributes. A
// category without a term is skipped.
func parseAtomCategory(el *etree.Element, s Session) (any, Session, error) {
	term := el.SelectAttrValue("term", "")
	if term == "" {
		return nil, s, nil
	}
	return feed.Category{
		Term:   term,
		Scheme: el.SelectAttrValue("scheme", ""),
		Label:  el.SelectAttrValue("label", ""),
	}, s, nil
}

// parseAtomGenerator reads the generator element with its uri and version
// attributes. The pre-1.0 drafts used url instead of uri.
func parseAtomGenerator(el *etree.Element, s Session) (any, Session, error) {
	uri := el.SelectAttrValue("uri", "")
	if uri == "" {
		uri = el.SelectAttrValue("url", "")
	}
	g := &feed.Generator{
		URI:     resolveRef(s, uri),
		Version: el.SelectAttrValue("version", ""),
		Value:   elementText(el),
	}
	if g.URI == "" && g.Version == "" && g.Value == "" {
		return nil, s, nil
	}
	return g, s, nil
}

// parseAtomIRI maps elements whose text is an IRI, such as logo and icon.
func parseAtomIRI(el *etree.Element, s Session) (any, Session, error) {
	target := elementText(el)
	if target == "" {
		return nil, s, nil
	}
	return resolveRef(s, target), s, nil
}

// parseAtomContent reads a content element. A src attribute makes it an
// out-of-line content reference with no inline value.
func parseAtomContent(el *etree.Element, s Session) (any, Session, error) {
	content := &feed.Content{Text: textConstruct(el)}
	if src := el.SelectAttrValue("src", ""); src != "" {
		content.SourceURI = resolveRef(s, src)
	}
	return content, s, nil
}

// parseAtomSource maps an inline source element by running the feed
// rules over its children. Unlike the RSS 2.0 source element this
// involves no network access. Source feeds carry metadata only, so
// Entries stays nil.
func parseAtomSource(el *etree.Element, s Session) (any, Session, error) {
	src := &feed.Feed{}
	s, err := atomRules.dispatch("feed", el, s, src)
	if err != nil {
		return nil, s, err
	}
	return src, s, nil
}

// parseAtom maps an Atom document onto the canonical feed model.
func (p *Parser) parseAtom(ctx context.Context, doc *etree.Document, sourceURL string, parseEntries bool) (*feed.Feed, any, error) {
	root := doc.Root()
	lang, _ := attrValue(root, "lang")
	s := p.newSession(ctx, sourceURL, lang)
	if base, ok := attrValue(root, "base"); ok {
		if resolved := resolveRef(s, base); resolved != "" {
			s.URL = resolved
		}
	}
	f := &feed.Feed{}
	s, err := atomRules.dispatch("feed", root, s, f)
	if err != nil {
		return nil, nil, err
	}
	if parseEntries {
		f.Entries = []*feed.Entry{}
		for _, entryEl := range root.SelectElements("entry") {
			entry := &feed.Entry{}
			s, err = atomRules.dispatch("entry", entryEl, s, entry)
			if err != nil {
				return nil, nil, err
			}
			f.Entries = append(f.Entries, entry)
		}
	}
	makeLegal(f, sourceURL, "application/atom+xml")
	return f, nil, nil
}
