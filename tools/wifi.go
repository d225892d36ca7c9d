package tools

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func wifiConnectioninfoTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_wifi_connectioninfo",
		mcp.WithDescription("Get information about the current WiFi connection as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-wifi-connectioninfo"}, ""))
	}
}

func wifiEnableTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_wifi_enable",
		mcp.WithDescription("Turn WiFi on or off."),
		mcp.WithBoolean("state", mcp.Required(), mcp.Description("True to enable, false to disable.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		state, err := req.RequireBool("state")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := r.ExecuteDevice([]string{"termux-wifi-enable", strconv.FormatBool(state)}, "")
		if state {
			return statusResult(res, "wifi enabled")
		}
		return statusResult(res, "wifi disabled")
	}
}

func wifiScaninfoTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_wifi_scaninfo",
		mcp.WithDescription("Get information from the last WiFi scan as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-wifi-scaninfo"}, ""))
	}
}
