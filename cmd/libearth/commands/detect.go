package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/Kjwon15/libearth/parser"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Quiet bool
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
// Returns the FlagSet and a DetectFlags struct with bound flag variables.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the format name")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the format name")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: libearth detect [flags] <file|url|->\n\n")
		Writef(output, "Identify the syndication format of a document without parsing it fully.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nFormats:\n")
		Writef(output, "  rss2    RSS 2.0 (and 0.9x descendants)\n")
		Writef(output, "  rss1    RDF Site Summary 1.0\n")
		Writef(output, "  atom    Atom 1.0 (and 0.3 legacy documents)\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  libearth detect feed.xml\n")
		Writef(output, "  libearth detect https://example.com/feed\n")
		Writef(output, "  cat feed.xml | libearth detect -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Format recognized\n")
		Writef(output, "  1    Unknown format or unreadable document\n")
	}

	return fs, flags
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("detect command requires exactly one file path, URL, or '-' for stdin")
	}

	feedPath := fs.Arg(0)

	data, err := ReadDocument(context.Background(), feedPath)
	if err != nil {
		return err
	}

	format, err := parser.DetectFormat(data)
	if err != nil {
		return fmt.Errorf("detecting format: %w", err)
	}

	if flags.Quiet {
		fmt.Println(format.String())
		return nil
	}

	fmt.Printf("Document: %s\n", FormatFeedPath(feedPath))
	fmt.Printf("Format: %s\n", format.String())
	fmt.Printf("Media Type: %s\n", format.MediaType())
	return nil
}
