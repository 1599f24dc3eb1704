// Package parser parses syndication feed documents into the canonical
// feed model.
//
// The parser supports RSS 2.0 and its 0.9x ancestors, RDF Site Summary
// (RSS 1.0 and 0.90) and Atom (RFC 4287 plus the pre-1.0 draft
// namespace). Input bytes are normalized to UTF-8 before parsing, so
// documents may arrive in any encoding their XML declaration, byte
// order mark or byte distribution reveals. Documents can be loaded from
// local files or remote URLs (http:// or https://).
//
// # Quick Start
//
// Parse a document using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("https://example.com/feed.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Feed.Title.Value, result.Format)
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	result1, _ := p.Parse("feed.xml")
//	result2, _ := p.Parse("https://example.com/feed.xml")
//
// # Mapping
//
// Each format has a static rule table binding element names, optionally
// namespace-qualified, to extraction handlers. Dispatch walks the
// document in order: scalar fields take the last value written, while
// collections such as links and categories accumulate in document
// order. Values the source format cannot express are repaired after
// mapping, so every returned feed carries an identifier, a self link
// and an updated time.
//
// Dates without a UTC offset are interpreted in a zone inferred from
// the feed's language and the origin URL's country domain. Set
// Parser.DefaultTimezone or use WithDefaultTimezone to pin one.
//
// # Source Resolution
//
// An RSS 2.0 item may carry a source element naming the feed it was
// republished from. The parser fetches that document, detects its
// format and maps its feed-level metadata, embedding the result in the
// entry. A fetch or parse failure there fails the whole parse, matching
// the strictness of the rest of the pipeline. Use WithSourceResolution
// to turn resolution off, or Parser.Fetcher to control how the fetch
// happens.
//
// # Errors
//
// Failures are reported through the feederrors package: unparsable
// documents return a *feederrors.ParseError, fetch failures a
// *feederrors.FetchError and unrecognized document roots a
// *feederrors.UnknownFormatError. Conditions a tolerant feed reader
// recovers from, such as an unusable guid or a garbled date, do not
// fail the parse; the affected field is simply left unset.
package parser
