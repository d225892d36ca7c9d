package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func batteryStatusTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_battery_status",
		mcp.WithDescription("Get the device battery status (charge level, health, temperature, plug state) as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-battery-status"}, ""))
	}
}
