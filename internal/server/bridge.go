package server

import (
	"context"
	"fmt"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// attach bridges the capability registry onto the MCP transport:
// actions become tools, guidance becomes a prompt, resources become
// resources. Every handler routes through Registry.Invoke, so the
// registry's validation and dispatch contract is the single code path
// regardless of how a capability is addressed.
func attach(s *server.MCPServer, reg *capability.Registry) {
	for _, c := range reg.List() {
		switch c.Kind {
		case capability.KindAction:
			s.AddTool(toolDefinition(c), toolHandler(reg, c.Name))
		case capability.KindGuidance:
			s.AddPrompt(
				mcp.NewPrompt(c.Name, mcp.WithPromptDescription(c.Description)),
				promptHandler(reg, c.Name),
			)
		case capability.KindResource:
			s.AddResource(
				mcp.NewResource(c.URI, c.Name,
					mcp.WithResourceDescription(c.Description),
					mcp.WithMIMEType(c.MIMEType),
				),
				resourceHandler(reg, c.Name, c.MIMEType),
			)
		}
	}
}

// toolDefinition translates a capability's input contract into an MCP
// tool definition, field by field.
func toolDefinition(c capability.Capability) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(c.Description)}
	for _, f := range c.Input.Fields {
		var props []mcp.PropertyOption
		if f.Description != "" {
			props = append(props, mcp.Description(f.Description))
		}
		if f.Required {
			props = append(props, mcp.Required())
		}
		switch f.Type {
		case capability.TypeString:
			opts = append(opts, mcp.WithString(f.Name, props...))
		case capability.TypeBool:
			opts = append(opts, mcp.WithBoolean(f.Name, props...))
		case capability.TypeNumber:
			opts = append(opts, mcp.WithNumber(f.Name, props...))
		}
	}
	return mcp.NewTool(c.Name, opts...)
}

func toolHandler(reg *capability.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := reg.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			// Handler and validation failures are failed invocation
			// results for the caller, not protocol errors.
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func promptHandler(reg *capability.Registry, name string) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		out, err := reg.Invoke(ctx, name, nil)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", name, err)
		}
		return &mcp.GetPromptResult{
			Description: name,
			Messages: []mcp.PromptMessage{
				{
					Role:    mcp.RoleUser,
					Content: mcp.NewTextContent(out),
				},
			},
		}, nil
	}
}

func resourceHandler(reg *capability.Registry, name, mimeType string) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		out, err := reg.Invoke(ctx, name, nil)
		if err != nil {
			return errorResource(req.Params.URI, err.Error()), nil
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: mimeType,
				Text:     out,
			},
		}, nil
	}
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
