package tools

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerFunc is the signature shared by every tool handler.
type HandlerFunc func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Middleware wraps a handler with behaviour that applies to every tool call.
type Middleware func(HandlerFunc) HandlerFunc

// LoggingMiddleware records the tool name, duration and outcome of each call.
// A nil logger falls back to log.Default().
func LoggingMiddleware(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, request)

			fields := []any{"tool", request.Params.Name, "duration", time.Since(start)}
			if err != nil {
				logger.Warn("tool call failed", append(fields, "error", err)...)
				return result, err
			}

			logger.Debug("tool call completed", fields...)
			return result, nil
		}
	}
}
