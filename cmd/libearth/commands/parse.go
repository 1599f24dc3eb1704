package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kjwon15/libearth/feed"
	"github.com/Kjwon15/libearth/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Output     string
	NoEntries  bool
	MaxEntries int
	BaseURL    string
	Quiet      bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NoEntries, "no-entries", false, "map feed-level metadata only, skipping entries")
	fs.IntVar(&flags.MaxEntries, "max-entries", 0, "maximum number of entries to keep (0 = no limit)")
	fs.StringVar(&flags.BaseURL, "base-url", "", "origin URL for resolving relative references in file and stdin input")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the feed, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the feed, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: libearth parse [flags] <file|url|->\n\n")
		Writef(output, "Parse a syndication feed (RSS 2.0, RSS 1.0, or Atom) into the canonical model.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nOutput Formats:\n")
		Writef(output, "  text (default)  Human-readable feed summary\n")
		Writef(output, "  json            Canonical feed as JSON for programmatic processing\n")
		Writef(output, "  yaml            Canonical feed as YAML for programmatic processing\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  libearth parse feed.xml\n")
		Writef(output, "  libearth parse https://example.com/feed.xml\n")
		Writef(output, "  libearth parse -output json feed.xml | jq '.title.value'\n")
		Writef(output, "  libearth parse -no-entries -output yaml https://example.com/feed.xml\n")
		Writef(output, "  libearth parse -base-url https://example.com/ local-copy.xml\n")
		Writef(output, "  cat feed.xml | libearth parse -q -output json -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "  - Use -base-url to supply the document origin for relative references\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}

	feedPath := fs.Arg(0)

	// Validate output flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}

	ctx := context.Background()
	opts := []parser.Option{
		parser.WithEntryParsing(!flags.NoEntries),
	}
	switch {
	case flags.BaseURL != "":
		// An explicit origin needs the raw bytes so the document and its
		// origin can be supplied separately.
		data, err := ReadDocument(ctx, feedPath)
		if err != nil {
			return err
		}
		opts = append(opts,
			parser.WithBytes(data),
			parser.WithSourceURL(flags.BaseURL),
			parser.WithSourceName(FormatFeedPath(feedPath)),
		)
	case feedPath == StdinFilePath:
		opts = append(opts, parser.WithReader(os.Stdin))
	default:
		opts = append(opts, parser.WithFilePath(feedPath))
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("parsing feed: %w", err)
	}

	f := result.Feed
	if flags.MaxEntries > 0 && len(f.Entries) > flags.MaxEntries {
		f.Entries = f.Entries[:flags.MaxEntries]
	}

	// Print results (always to stderr to keep stdout clean for output)
	if !flags.Quiet {
		Writef(os.Stderr, "Syndication Feed Parser\n")
		Writef(os.Stderr, "=======================\n\n")
		OutputFeedHeader(feedPath, result.Format)
		OutputFeedStats(result.SourceSize, len(f.Entries), result.LoadTime)
		Writef(os.Stderr, "\n")
	}

	if flags.Output == FormatJSON || flags.Output == FormatYAML {
		return OutputStructured(f, flags.Output)
	}

	printFeedSummary(os.Stdout, f)
	return nil
}

// printFeedSummary writes a human-readable rendering of the canonical feed.
func printFeedSummary(w io.Writer, f *feed.Feed) {
	Writef(w, "ID: %s\n", f.ID)
	if f.Title != nil {
		Writef(w, "Title: %s\n", f.Title.Value)
	}
	if f.Subtitle != nil {
		Writef(w, "Subtitle: %s\n", f.Subtitle.Value)
	}
	if f.UpdatedAt != nil {
		Writef(w, "Updated: %s\n", f.UpdatedAt.Format(time.RFC3339))
	}
	for _, p := range f.Authors {
		Writef(w, "Author: %s\n", formatPerson(p))
	}
	for _, p := range f.Contributors {
		Writef(w, "Contributor: %s\n", formatPerson(p))
	}
	if f.Generator != nil {
		name := f.Generator.Value
		if name == "" {
			name = f.Generator.URI
		}
		if f.Generator.Version != "" {
			name += " " + f.Generator.Version
		}
		Writef(w, "Generator: %s\n", name)
	}
	for _, l := range f.Links {
		Writef(w, "Link: %s (%s)\n", l.URI, l.Relation)
	}

	if f.Entries == nil {
		return
	}
	Writef(w, "\nEntries (%d):\n", len(f.Entries))
	for _, e := range f.Entries {
		title := e.ID
		if e.Title != nil {
			title = e.Title.Value
		}
		Writef(w, "  - %s\n", title)
		if link := e.LinkByRelation(feed.RelationAlternate); link != nil {
			Writef(w, "    %s\n", link.URI)
		}
		ts := e.PublishedAt
		if ts == nil {
			ts = e.UpdatedAt
		}
		if ts != nil {
			Writef(w, "    %s\n", ts.Format(time.RFC3339))
		}
	}
}

// formatPerson renders a person as "Name <email>" with the pieces it has.
func formatPerson(p feed.Person) string {
	switch {
	case p.Name != "" && p.Email != "":
		return fmt.Sprintf("%s <%s>", p.Name, p.Email)
	case p.Name != "":
		return p.Name
	default:
		return p.Email
	}
}
