package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func fingerprintTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_fingerprint",
		mcp.WithDescription("Authenticate with the device fingerprint sensor and return the result as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-fingerprint"}, ""))
	}
}
