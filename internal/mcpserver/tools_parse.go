package mcpserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/Kjwon15/libearth/feed"
	"github.com/Kjwon15/libearth/parser"
)

// summaryTextLimit caps free-text fields in summary output.
const summaryTextLimit = 200

type parseInput struct {
	Feed      feedInput `json:"feed"                 jsonschema:"The feed document to parse"`
	Full      bool      `json:"full,omitempty"       jsonschema:"Return the whole canonical feed as YAML instead of a summary"`
	NoEntries bool      `json:"no_entries,omitempty" jsonschema:"Map feed-level metadata only, skipping entries"`
}

type parseOutput struct {
	Format       string   `json:"format"`
	ID           string   `json:"id"`
	Title        string   `json:"title,omitempty"`
	Subtitle     string   `json:"subtitle,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
	Authors      []string `json:"authors,omitempty"`
	SelfURL      string   `json:"self_url,omitempty"`
	AlternateURL string   `json:"alternate_url,omitempty"`
	EntryCount   int      `json:"entry_count"`
	FullDocument string   `json:"full_document,omitempty"`
}

func handleParse(ctx context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	var extraOpts []parser.Option
	if input.NoEntries {
		extraOpts = append(extraOpts, parser.WithEntryParsing(false))
	}

	result, err := input.Feed.resolve(ctx, extraOpts...)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	f := result.Feed
	output := parseOutput{
		Format:     result.Format.String(),
		ID:         f.ID,
		EntryCount: len(f.Entries),
	}
	if f.Title != nil {
		output.Title = truncateText(f.Title.Value, summaryTextLimit)
	}
	if f.Subtitle != nil {
		output.Subtitle = truncateText(f.Subtitle.Value, summaryTextLimit)
	}
	if f.UpdatedAt != nil {
		output.UpdatedAt = f.UpdatedAt.Format(time.RFC3339)
	}
	for _, author := range f.Authors {
		output.Authors = append(output.Authors, author.Name)
	}
	if self := f.LinkByRelation(feed.RelationSelf); self != nil {
		output.SelfURL = self.URI
	}
	if alternate := f.LinkByRelation(feed.RelationAlternate); alternate != nil {
		output.AlternateURL = alternate.URI
	}

	if input.Full {
		data, err := yaml.Marshal(f)
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
