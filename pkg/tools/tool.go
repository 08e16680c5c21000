// Package tools provides the Tool interface and the registry the server lists
// and dispatches tools from.
package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
)

// Standard errors for consistent error handling
var (
	ErrInvalidParams    = errors.New("invalid parameters")
	ErrMissingArgument  = errors.New("missing required argument")
	ErrMissingArguments = errors.New("missing required arguments")
	ErrUnknownTool      = errors.New("unknown tool")
)

// Tool defines the interface for all tools in the system
type Tool interface {
	// Name returns the name of the tool
	Name() string

	// Handle returns the underlying MCP tool
	Handle() mcp.Tool

	// Handler processes tool requests. A returned error is a tool-level
	// failure and is reported to the client as such.
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	name   string
	handle mcp.Tool
}

// NewBaseTool creates a new BaseTool with the given name and handle
func NewBaseTool(name string, handle mcp.Tool) *BaseTool {
	return &BaseTool{
		name:   name,
		handle: handle,
	}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.name
}

// NewJSONResult renders v as indented JSON inside a single text block.
func NewJSONResult(v any) (*mcp.CallToolResult, error) {
	buf, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(buf))},
	}, nil
}
