package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func toastArgs(background, color, position string, short bool) []string {
	cmd := []string{"termux-toast"}
	if background != "" {
		cmd = append(cmd, "-b", background)
	}
	if color != "" {
		cmd = append(cmd, "-c", color)
	}
	if position != "" {
		cmd = append(cmd, "-g", position)
	}
	if short {
		cmd = append(cmd, "-s")
	}
	return cmd
}

func toastTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_toast",
		mcp.WithDescription("Show a transient popup notification. Without the text argument the message is read from the server's standard input."),
		mcp.WithString("text", mcp.Description("Text to show.")),
		mcp.WithString("background", mcp.Description("Background color, e.g. gray or #a52a2a.")),
		mcp.WithString("color", mcp.Description("Text color.")),
		mcp.WithString("position", mcp.Description("Position: top, middle, or bottom.")),
		mcp.WithBoolean("short", mcp.DefaultBool(false), mcp.Description("Show for a shorter time.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		background := req.GetString("background", "")
		color := req.GetString("color", "")
		position := req.GetString("position", "")
		short := req.GetBool("short", false)
		cmd := toastArgs(background, color, position, short)

		text := req.GetString("text", "")
		if text != "" {
			res := r.ExecuteDevice(append(cmd, text), "")
			return statusResult(res, "toast shown")
		}
		res := r.ExecuteDevice(cmd, readStdin())
		return statusResult(res, "toast shown")
	}
}
