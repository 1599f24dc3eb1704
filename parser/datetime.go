package parser

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/beevik/etree"
)

// namedZoneOffsets maps the zone abbreviations RFC 822 permits to numeric
// offsets. Go's layout parser cannot resolve abbreviations reliably, so
// they are rewritten before parsing.
var namedZoneOffsets = map[string]string{
	"UT":  "+0000",
	"UTC": "+0000",
	"GMT": "+0000",
	"Z":   "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// Layouts with an explicit numeric offset, most specific first. Feeds in
// the wild drop the weekday, the seconds, or both, and a few still use
// two-digit years.
var rfc822ZonedLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 06 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04 -0700",
}

// Layouts with no zone information; the session time zone applies.
var rfc822LocalLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05",
	"Mon, 2 Jan 06 15:04:05",
	"Mon, 2 Jan 2006 15:04",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04",
}

// parseRFC822 parses the RFC 822 date format RSS 2.0 uses, including the
// malformed variants common in real feeds. Zone-less dates are
// interpreted in defaultTZ. The second return value reports success.
func parseRFC822(text string, defaultTZ *time.Location) (time.Time, bool) {
	if defaultTZ == nil {
		defaultTZ = time.UTC
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	if offset, ok := namedZoneOffsets[strings.ToUpper(fields[len(fields)-1])]; ok {
		fields[len(fields)-1] = offset
	}
	normalized := strings.Join(fields, " ")

	for _, layout := range rfc822ZonedLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	for _, layout := range rfc822LocalLayouts {
		if t, err := time.ParseInLocation(layout, normalized, defaultTZ); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseIn(strings.TrimSpace(text), defaultTZ); err == nil {
		return t, true
	}
	return time.Time{}, false
}

var w3cdtfZonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
}

var w3cdtfLocalLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseW3CDTF parses the W3C date-time format Atom and Dublin Core use.
// Truncated forms down to a bare year are accepted. Zone-less dates are
// interpreted in defaultTZ.
func parseW3CDTF(text string, defaultTZ *time.Location) (time.Time, bool) {
	if defaultTZ == nil {
		defaultTZ = time.UTC
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range w3cdtfZonedLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	for _, layout := range w3cdtfLocalLayouts {
		if t, err := time.ParseInLocation(layout, text, defaultTZ); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseIn(text, defaultTZ); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseDateTime handles RFC 822 date elements such as pubDate. A date
// that cannot be parsed is skipped rather than failing the document;
// real feeds carry too much garbage in date fields for it to be fatal.
func parseDateTime(el *etree.Element, s Session) (any, Session, error) {
	text := elementText(el)
	t, ok := parseRFC822(text, s.location())
	if !ok {
		s.logger().Debug("ignoring unparsable date",
			"element", el.Tag, "value", strings.TrimSpace(text))
		return nil, s, nil
	}
	return &t, s, nil
}

// parseW3CDateTime handles W3C-DTF date elements such as dc:date and the
// Atom published and updated elements.
func parseW3CDateTime(el *etree.Element, s Session) (any, Session, error) {
	text := elementText(el)
	t, ok := parseW3CDTF(text, s.location())
	if !ok {
		s.logger().Debug("ignoring unparsable date",
			"element", el.Tag, "value", strings.TrimSpace(text))
		return nil, s, nil
	}
	return &t, s, nil
}
