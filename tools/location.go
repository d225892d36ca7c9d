package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// locationArgs builds the termux-location invocation. The device defaults
// (gps provider, one-shot request) emit no flags.
func locationArgs(provider, request string) []string {
	cmd := []string{"termux-location"}
	if provider != "" && provider != "gps" {
		cmd = append(cmd, "-p", provider)
	}
	if request != "" && request != "once" {
		cmd = append(cmd, "-r", request)
	}
	return cmd
}

func locationTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_location",
		mcp.WithDescription("Get the device location as JSON."),
		mcp.WithString("provider", mcp.DefaultString("gps"),
			mcp.Description("Location provider: gps, network, or passive.")),
		mcp.WithString("request", mcp.DefaultString("once"),
			mcp.Description("Request kind: once, last, or updates.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		provider := req.GetString("provider", "gps")
		request := req.GetString("request", "once")
		return jsonResult(r.ExecuteDevice(locationArgs(provider, request), ""))
	}
}
