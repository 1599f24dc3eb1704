package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Kjwon15/libearth/parser"
)

type detectInput struct {
	Feed feedInput `json:"feed" jsonschema:"The document to classify"`
}

type detectOutput struct {
	Format    string `json:"format"`
	MediaType string `json:"media_type"`
}

func handleDetect(ctx context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	data, err := input.Feed.loadBytes(ctx)
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}

	format, err := parser.DetectFormat(data)
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}

	return nil, detectOutput{
		Format:    format.String(),
		MediaType: format.MediaType(),
	}, nil
}
