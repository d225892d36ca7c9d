package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func brightnessTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_brightness",
		mcp.WithDescription("Set the screen brightness."),
		mcp.WithString("brightness", mcp.Required(),
			mcp.Description("Brightness level between 0 and 255, or \"auto\".")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		brightness, err := req.RequireString("brightness")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := r.ExecuteDevice([]string{"termux-brightness", brightness}, "")
		return statusResult(res, "brightness set")
	}
}
