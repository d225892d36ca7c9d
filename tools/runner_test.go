package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

// fakeRunner records every device invocation and replies with a fixed result.
type fakeRunner struct {
	res    bridge.Result
	calls  [][]string
	inputs []string
}

func (f *fakeRunner) ExecuteDevice(tokens []string, input string) bridge.Result {
	f.calls = append(f.calls, tokens)
	f.inputs = append(f.inputs, input)
	return f.res
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}
