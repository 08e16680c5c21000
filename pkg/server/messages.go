package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// request is one decoded input line. A request without an id member is a
// notification and gets no reply; an explicit null id still gets one.
type request struct {
	ID     mcp.RequestId
	HasID  bool
	Method string
	Params json.RawMessage
}

func (r request) notification() bool {
	return !r.HasID
}

// rpcError is a JSON-RPC error ready to be written back to the client.
type rpcError struct {
	Code    int
	Message string
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func newRPCError(code int, format string, args ...any) *rpcError {
	return &rpcError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// decodeRequest turns a non-blank line into a request. The returned request
// carries whatever id could be recovered even when decoding fails.
func decodeRequest(line []byte) (request, *rpcError) {
	var req request

	if !json.Valid(line) {
		return req, newRPCError(mcp.PARSE_ERROR, "Parse error")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil || fields == nil {
		return req, newRPCError(mcp.INVALID_REQUEST, "Invalid Request")
	}

	if raw, ok := fields["id"]; ok {
		if err := json.Unmarshal(raw, &req.ID); err != nil {
			return request{}, newRPCError(mcp.INVALID_REQUEST, "Invalid Request: %v", err)
		}
		req.HasID = true
	}

	raw, ok := fields["method"]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return req, newRPCError(mcp.INVALID_REQUEST, "Invalid Request: missing method")
	}
	if err := json.Unmarshal(raw, &req.Method); err != nil || req.Method == "" {
		return req, newRPCError(mcp.INVALID_REQUEST, "Invalid Request: method must be a non-empty string")
	}

	req.Params = fields["params"]
	return req, nil
}

type initializeParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ClientInfo      mcp.Implementation `json:"clientInfo"`
}

type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    serverCapabilities `json:"capabilities"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
}

// serverCapabilities spells out listChanged, which mcp.ServerCapabilities
// omits when false.
type serverCapabilities struct {
	Tools struct {
		ListChanged bool `json:"listChanged"`
	} `json:"tools"`
}

type callToolParams struct {
	Name      *string        `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type callToolResult struct {
	Content []mcp.Content `json:"content"`
	IsError bool          `json:"isError"`
}
