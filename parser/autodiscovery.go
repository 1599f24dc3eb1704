package parser

import (
	"github.com/beevik/etree"

	"github.com/Kjwon15/libearth/feederrors"
)

// Format identifies a supported syndication wire format.
type Format int

const (
	FormatUnknown Format = iota
	FormatRSS2
	FormatRSS1
	FormatAtom
)

// String returns the short lowercase name used in logs and command
// output.
func (f Format) String() string {
	switch f {
	case FormatRSS2:
		return "rss2"
	case FormatRSS1:
		return "rss1"
	case FormatAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// MediaType returns the media type the format is conventionally served
// with.
func (f Format) MediaType() string {
	switch f {
	case FormatAtom:
		return "application/atom+xml"
	case FormatRSS1, FormatRSS2:
		return "application/rss+xml"
	default:
		return "application/xml"
	}
}

// detectRoot classifies a parsed document by its root element. The rss
// root covers 2.0 and the 0.9x lineage, an RDF root covers RSS 1.0 and
// 0.90, and a feed root covers Atom in either namespace. Anything else
// is an unknown format.
func detectRoot(doc *etree.Document, sourceURL string) (Format, error) {
	root := doc.Root()
	if root == nil {
		return FormatUnknown, &feederrors.ParseError{
			URL:     sourceURL,
			Message: "document has no root element",
		}
	}
	switch {
	case root.Tag == "rss":
		return FormatRSS2, nil
	case root.Tag == "RDF" && root.NamespaceURI() == rdfNS:
		return FormatRSS1, nil
	case root.Tag == "feed":
		switch root.NamespaceURI() {
		case atomNS, atomLegacyNS, "":
			return FormatAtom, nil
		}
	}
	return FormatUnknown, &feederrors.UnknownFormatError{
		URL:     sourceURL,
		RootTag: root.Tag,
	}
}

// DetectFormat reports which syndication format a document is in without
// mapping it. The data goes through the same encoding normalization and
// tree parsing a full parse would apply.
func DetectFormat(data []byte) (Format, error) {
	doc, err := loadTree(data, "")
	if err != nil {
		return FormatUnknown, err
	}
	return detectRoot(doc, "")
}
