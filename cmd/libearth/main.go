package main

import (
	"fmt"
	"os"

	"github.com/Kjwon15/libearth"
	"github.com/Kjwon15/libearth/cmd/libearth/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("libearth v%s\n", libearth.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "detect":
		if err := commands.HandleDetect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command suggestCommand may offer.
var knownCommands = []string{"parse", "detect", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit distance
// of 2, or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, candidate := range knownCommands {
		if d := editDistance(input, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`libearth - Syndication Feed Tools

Usage:
  libearth <command> [options]

Commands:
  parse       Parse a feed document into the canonical model
  detect      Identify the syndication format of a document
  mcp         Run the Model Context Protocol server on stdio
  version     Show version information
  help        Show this help message

Examples:
  libearth parse https://example.com/feed.xml
  libearth parse -output json feed.xml | jq '.title.value'
  libearth parse -no-entries -output yaml feed.xml
  libearth detect feed.xml
  cat feed.xml | libearth detect -q -
  libearth mcp

Run 'libearth <command> --help' for more information on a command.`)
}
