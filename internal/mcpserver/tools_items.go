package mcpserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Kjwon15/libearth/feed"
)

type itemsInput struct {
	Feed   feedInput `json:"feed"             jsonschema:"The feed document to list entries from"`
	Offset int       `json:"offset,omitempty" jsonschema:"Number of entries to skip"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of entries to return (default LIBEARTH_ITEM_LIMIT)"`
}

type itemSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	Author      string `json:"author,omitempty"`
}

type itemsOutput struct {
	Total  int           `json:"total"`
	Offset int           `json:"offset"`
	Count  int           `json:"count"`
	Items  []itemSummary `json:"items,omitempty"`
}

func handleItems(ctx context.Context, _ *mcp.CallToolRequest, input itemsInput) (*mcp.CallToolResult, itemsOutput, error) {
	result, err := input.Feed.resolve(ctx)
	if err != nil {
		return errResult(err), itemsOutput{}, nil
	}

	entries := result.Feed.Entries
	page := paginate(entries, input.Offset, input.Limit)

	output := itemsOutput{
		Total:  len(entries),
		Offset: input.Offset,
		Count:  len(page),
	}
	for _, entry := range page {
		item := itemSummary{ID: entry.ID}
		if entry.Title != nil {
			item.Title = truncateText(entry.Title.Value, summaryTextLimit)
		}
		if alternate := entry.LinkByRelation(feed.RelationAlternate); alternate != nil {
			item.URL = alternate.URI
		}
		if entry.PublishedAt != nil {
			item.PublishedAt = entry.PublishedAt.Format(time.RFC3339)
		}
		if entry.UpdatedAt != nil {
			item.UpdatedAt = entry.UpdatedAt.Format(time.RFC3339)
		}
		if len(entry.Authors) > 0 {
			item.Author = entry.Authors[0].Name
		}
		output.Items = append(output.Items, item)
	}

	return nil, output, nil
}
