package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kjwon15/libearth/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: libearth mcp\n\n")
		Writef(output, "Run the Model Context Protocol server on stdio.\n\n")
		Writef(output, "The server exposes feed tooling to MCP clients:\n")
		Writef(output, "  parse     Parse a feed document into the canonical model\n")
		Writef(output, "  detect    Identify the syndication format of a document\n")
		Writef(output, "  items     List feed entries with pagination\n")
		Writef(output, "\nConfiguration (environment):\n")
		Writef(output, "  LIBEARTH_CACHE_ENABLED      Cache parsed feeds between calls (default true)\n")
		Writef(output, "  LIBEARTH_ITEM_LIMIT         Default page size for the items tool (default 50)\n")
		Writef(output, "  LIBEARTH_ALLOW_PRIVATE_IPS  Allow fetching private and loopback hosts (default false)\n")
		Writef(output, "  LIBEARTH_SOURCE_RESOLUTION  Resolve entry source references (default true)\n")
		Writef(output, "\nExample client configuration:\n")
		Writef(output, "  {\"command\": \"libearth\", \"args\": [\"mcp\"]}\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It serves on stdin/stdout until the
// client disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
