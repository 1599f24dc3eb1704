package parser

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/Kjwon15/libearth/feed"
)

// elementText returns the character data directly inside el, with
// surrounding whitespace trimmed. Comments and processing instructions
// between text chunks are skipped.
func elementText(el *etree.Element) string {
	var b strings.Builder
	for _, child := range el.Child {
		if cd, ok := child.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// deepText returns all character data inside el and its descendants, in
// document order. Atom XHTML text constructs flatten through here.
func deepText(el *etree.Element) string {
	var b strings.Builder
	gatherText(el, &b)
	return strings.TrimSpace(b.String())
}

func gatherText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			b.WriteString(node.Data)
		case *etree.Element:
			gatherText(node, b)
		}
	}
}

// attrValue looks up an attribute by local name, ignoring case. Feeds
// spell attributes like isPermaLink several ways.
func attrValue(el *etree.Element, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Space != "xmlns" && strings.EqualFold(a.Key, name) {
			return a.Value, true
		}
	}
	return "", false
}

// resolveRef resolves ref against the session's origin URL. A missing or
// unparsable base leaves ref untouched.
func resolveRef(s Session, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || s.URL == "" {
		return ref
	}
	base, err := url.Parse(s.URL)
	if err != nil {
		return ref
	}
	target, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(target).String()
}

// parseTextValue handles plain text constructs such as titles and rights
// statements.
func parseTextValue(el *etree.Element, s Session) (any, Session, error) {
	return &feed.Text{Type: feed.TypeText, Value: elementText(el)}, s, nil
}

// parseSubtitleValue handles the channel description element.
func parseSubtitleValue(el *etree.Element, s Session) (any, Session, error) {
	return &feed.Text{Type: feed.TypeText, Value: elementText(el)}, s, nil
}

// parseContentValue handles entry body elements. Feed bodies are HTML by
// convention even when they arrive entity-escaped.
func parseContentValue(el *etree.Element, s Session) (any, Session, error) {
	return &feed.Content{Text: feed.Text{Type: feed.TypeHTML, Value: elementText(el)}}, s, nil
}

// parseSimpleLink handles link elements whose target is their text
// content. The relation defaults to alternate and the target is assumed
// to be a web page.
func parseSimpleLink(el *etree.Element, s Session) (any, Session, error) {
	return feed.Link{
		URI:       resolveRef(s, elementText(el)),
		Relation:  feed.RelationAlternate,
		MediaType: "text/html",
	}, s, nil
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s<>()]+@[^@\s<>()]+$`)
	parenPattern = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)$`)
	anglePattern = regexp.MustCompile(`^(.*?)\s*<([^>]*)>$`)
)

// personFromText splits free-form author text into a person record. It
// understands the common "email (name)", "name (email)", "name <email>"
// and bare-address forms; anything else is kept verbatim as the display
// name. The boolean is false only for empty input.
func personFromText(text string) (feed.Person, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return feed.Person{}, false
	}
	if m := parenPattern.FindStringSubmatch(text); m != nil {
		head, paren := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		switch {
		case emailPattern.MatchString(paren):
			return personRecord(head, paren), true
		case emailPattern.MatchString(head):
			return personRecord(paren, head), true
		}
	}
	if m := anglePattern.FindStringSubmatch(text); m != nil {
		if addr := strings.TrimSpace(m[2]); emailPattern.MatchString(addr) {
			return personRecord(strings.TrimSpace(m[1]), addr), true
		}
	}
	if emailPattern.MatchString(text) {
		return personRecord("", text), true
	}
	return feed.Person{Name: text}, true
}

func personRecord(name, email string) feed.Person {
	if name == "" {
		name = email
	}
	return feed.Person{Name: name, Email: email}
}

// parsePerson handles author and editor elements carrying free-form
// person text.
func parsePerson(el *etree.Element, s Session) (any, Session, error) {
	person, ok := personFromText(elementText(el))
	if !ok {
		return nil, s, nil
	}
	return person, s, nil
}
