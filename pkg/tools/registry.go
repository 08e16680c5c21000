package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Registry holds the tools in the order they were registered. It is built
// once at startup and only read afterwards.
type Registry struct {
	order      []Tool
	tools      map[string]Tool
	middleware []Middleware
}

// NewRegistry creates a registry from tools. Later duplicates of a name are
// ignored.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{
		order: make([]Tool, 0, len(tools)),
		tools: make(map[string]Tool, len(tools)),
	}

	for _, tool := range tools {
		if _, exists := r.tools[tool.Name()]; exists {
			continue
		}
		r.order = append(r.order, tool)
		r.tools[tool.Name()] = tool
	}

	return r
}

// Use appends middleware applied to every Call, outermost first.
func (r *Registry) Use(middleware ...Middleware) *Registry {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.order))
	copy(out, r.order)
	return out
}

// Describe returns the tool registered under name.
func (r *Registry) Describe(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Descriptors returns the MCP definitions of all tools, in order.
func (r *Registry) Descriptors() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(r.order))
	for _, tool := range r.order {
		out = append(out, tool.Handle())
	}
	return out
}

// Call dispatches request to the tool it names.
func (r *Registry) Call(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tool, ok := r.Describe(request.Params.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, request.Params.Name)
	}

	handler := HandlerFunc(tool.Handler)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}

	return handler(ctx, request)
}
