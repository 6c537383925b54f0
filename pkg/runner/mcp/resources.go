package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerAllQuotesResource(srv, svc)
	registerCategoryTemplate(srv, svc)
}

func registerAllQuotesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"quotes://all",
		"All Quotes",
		mcp.WithResourceDescription("Every stored quote in insertion order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list, err := svc.ListQuotes(ctx, "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"quotes": list,
			"count":  len(list),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerCategoryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"quotes://categories/{name}",
		"Category Quotes",
		mcp.WithTemplateDescription("Quotes that belong to a category."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("category name is required")
		}

		list, err := svc.ListQuotes(ctx, name)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"category": name,
			"count":    len(list),
			"quotes":   list,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg unwraps a URI template argument, which may arrive as a
// string or a single-element list.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
