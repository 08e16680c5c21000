package utils

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// HasParams reports whether every key is present with a non-nil value.
func HasParams(req mcp.CallToolRequest, keys ...string) bool {
	args := req.GetArguments()
	for _, key := range keys {
		if val, exists := args[key]; !exists || val == nil {
			return false
		}
	}
	return true
}

// GetStringParam safely extracts a string parameter from the request
func GetStringParam(req mcp.CallToolRequest, key string, required bool) (string, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return "", fmt.Errorf("missing required parameter: '%s'", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter '%s' must be a string", key)
	}

	return str, nil
}

// GetRequiredStringParam is a shorthand for GetStringParam with required=true
func GetRequiredStringParam(req mcp.CallToolRequest, key string) (string, error) {
	return GetStringParam(req, key, true)
}
