package server

import (
	"context"
	"encoding/json"
	"runtime/debug"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolErrorCode is reported for every failed tool invocation.
const toolErrorCode = -32000

const toolErrorPrefix = "error processing mcp-server-time query: "

const defaultProtocolVersion = "2024-11-05"

// dispatch runs the handler for req.Method. A panic in a handler is reported
// as an internal error instead of stopping the loop.
func (s *Server) dispatch(ctx context.Context, req request) (result any, rpcErr *rpcError) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panicked", "method", req.Method, "panic", r, "stack", string(debug.Stack()))
			result, rpcErr = nil, newRPCError(mcp.INTERNAL_ERROR, "Internal error")
		}
	}()

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.Params)
	case "tools/list":
		return mcp.ListToolsResult{Tools: s.registry.Descriptors()}, nil
	case "tools/call":
		return s.handleCallTool(ctx, req.Params)
	case "ping", "shutdown":
		return nil, nil
	default:
		return nil, newRPCError(mcp.METHOD_NOT_FOUND, "Method not found: %s", req.Method)
	}
}

func (s *Server) handleInitialize(raw json.RawMessage) (any, *rpcError) {
	var params initializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, newRPCError(mcp.INVALID_PARAMS, "Invalid params: %v", err)
		}
	}

	version := defaultProtocolVersion
	if slices.Contains(mcp.ValidProtocolVersions, params.ProtocolVersion) {
		version = params.ProtocolVersion
	}

	s.logger.Info(
		"client initialized",
		"client", params.ClientInfo.Name,
		"clientVersion", params.ClientInfo.Version,
		"protocolVersion", version,
	)

	return initializeResult{
		ProtocolVersion: version,
		ServerInfo:      s.info,
	}, nil
}

func (s *Server) handleCallTool(ctx context.Context, raw json.RawMessage) (any, *rpcError) {
	invalid := newRPCError(mcp.INVALID_PARAMS, "Invalid params: missing tool name or arguments")

	if len(raw) == 0 {
		return nil, invalid
	}

	var params callToolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalid
	}

	if params.Name == nil || *params.Name == "" || params.Arguments == nil {
		return nil, invalid
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = *params.Name
	request.Params.Arguments = params.Arguments

	result, err := s.registry.Call(ctx, request)
	if err != nil {
		s.logger.Debug("tool error reported", "tool", *params.Name, "error", err)
		return nil, &rpcError{Code: toolErrorCode, Message: toolErrorPrefix + err.Error()}
	}

	if result == nil {
		return nil, newRPCError(mcp.INTERNAL_ERROR, "Internal error")
	}

	s.logger.Debug("tool call succeeded", "tool", *params.Name)

	return callToolResult{Content: result.Content, IsError: result.IsError}, nil
}

