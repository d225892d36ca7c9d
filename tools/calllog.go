package tools

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// callLogArgs builds the termux-call-log invocation. Flags are omitted when
// the value matches the tool's default.
func callLogArgs(limit, offset int) []string {
	cmd := []string{"termux-call-log"}
	if limit != 10 {
		cmd = append(cmd, "-l", strconv.Itoa(limit))
	}
	if offset != 0 {
		cmd = append(cmd, "-o", strconv.Itoa(offset))
	}
	return cmd
}

func callLogTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_call_log",
		mcp.WithDescription("List the device call log as JSON."),
		mcp.WithNumber("limit", mcp.DefaultNumber(10),
			mcp.Description("Number of entries to return.")),
		mcp.WithNumber("offset", mcp.DefaultNumber(0),
			mcp.Description("Offset into the call log.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 10)
		offset := req.GetInt("offset", 0)
		return jsonResult(r.ExecuteDevice(callLogArgs(limit, offset), ""))
	}
}
