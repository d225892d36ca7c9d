package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func clipboardGetTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_clipboard_get",
		mcp.WithDescription("Get the system clipboard text."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(r.ExecuteDevice([]string{"termux-clipboard-get"}, ""), false)
	}
}

func clipboardSetTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_clipboard_set",
		mcp.WithDescription("Set the system clipboard text. Without the text argument the payload is read from the server's standard input."),
		mcp.WithString("text", mcp.Description("Text to place on the clipboard.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")
		if text == "" {
			text = readStdin()
		}
		res := r.ExecuteDevice([]string{"termux-clipboard-set"}, text)
		return statusResult(res, "clipboard set")
	}
}
