package tools

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func vibrateArgs(duration int, force bool) []string {
	cmd := []string{"termux-vibrate"}
	if duration != 1000 {
		cmd = append(cmd, "-d", strconv.Itoa(duration))
	}
	if force {
		cmd = append(cmd, "-f")
	}
	return cmd
}

func vibrateTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_vibrate",
		mcp.WithDescription("Vibrate the device."),
		mcp.WithNumber("duration", mcp.DefaultNumber(1000),
			mcp.Description("Vibration duration in milliseconds.")),
		mcp.WithBoolean("force", mcp.DefaultBool(false),
			mcp.Description("Vibrate even in silent mode.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		duration := req.GetInt("duration", 1000)
		force := req.GetBool("force", false)
		res := r.ExecuteDevice(vibrateArgs(duration, force), "")
		return statusResult(res, "vibration triggered")
	}
}
