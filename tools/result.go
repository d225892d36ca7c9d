package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

// jsonResult decodes a strict-JSON command result into a tool result. The
// decoded value is re-marshalled so clients always receive canonical JSON
// text; failures become error results embedding stderr or the no-output
// sentinel.
func jsonResult(res bridge.Result) (*mcp.CallToolResult, error) {
	v, err := res.DecodeJSON()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalResult(v)
}

// lenientResult is jsonResult for tools that sometimes emit non-JSON
// diagnostic text: unparseable stdout passes through verbatim.
func lenientResult(res bridge.Result) (*mcp.CallToolResult, error) {
	v, err := res.LenientJSON()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if s, ok := v.(string); ok {
		return mcp.NewToolResultText(s), nil
	}
	return marshalResult(v)
}

// textResult returns stdout as-is (optionally trimmed) on success.
func textResult(res bridge.Result, trim bool) (*mcp.CallToolResult, error) {
	out, err := res.Text(trim)
	if err != nil {
		return mcp.NewToolResultError("Error: " + err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

// statusResult maps a successful exit to a fixed confirmation string.
func statusResult(res bridge.Result, confirm string) (*mcp.CallToolResult, error) {
	msg, err := res.Status(confirm)
	if err != nil {
		return mcp.NewToolResultError("Error: " + err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

func marshalResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
