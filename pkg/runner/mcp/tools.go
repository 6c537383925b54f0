package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListQuotesTool(srv, svc)
	registerRandomQuoteTool(srv, svc)
	registerAddQuoteTool(srv, svc)
	registerListCategoriesTool(srv, svc)
	registerSyncQuotesTool(srv, svc)
}

func registerListQuotesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_quotes",
		mcp.WithDescription("List stored quotes, optionally limited to one category."),
		mcp.WithString("category",
			mcp.Description("Category to filter by. Omit or use \"all\" for every quote."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := request.GetString("category", "")
		list, err := svc.ListQuotes(ctx, category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"quotes": list,
			"count":  len(list),
		})
	})
}

func registerRandomQuoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"random_quote",
		mcp.WithDescription("Pick a random quote, optionally from one category."),
		mcp.WithString("category",
			mcp.Description("Category to pick from. Omit for every quote."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := svc.RandomQuote(ctx, request.GetString("category", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(q)
	})
}

func registerAddQuoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_quote",
		mcp.WithDescription("Add a new quote to the collection."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The quote text."),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category for the quote."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Text     string `json:"text"`
			Category string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		q, err := svc.AddQuote(ctx, args.Text, args.Category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(q)
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List quote categories with counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cats, err := svc.ListCategories(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"categories": cats,
			"count":      len(cats),
		})
	})
}

func registerSyncQuotesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"sync_quotes",
		mcp.WithDescription("Merge quotes from the configured server. Server categories win on conflict."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.SyncQuotes(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
