package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func downloadArgs(url, title, description, path string) []string {
	cmd := []string{"termux-download"}
	if title != "" {
		cmd = append(cmd, "-t", title)
	}
	if description != "" {
		cmd = append(cmd, "-d", description)
	}
	if path != "" {
		cmd = append(cmd, "-p", path)
	}
	return append(cmd, url)
}

func downloadTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_download",
		mcp.WithDescription("Download a resource with the system download manager."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to download.")),
		mcp.WithString("title", mcp.Description("Download notification title.")),
		mcp.WithString("description", mcp.Description("Download notification description.")),
		mcp.WithString("path", mcp.Description("Path on the device to save the download to.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := req.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		title := req.GetString("title", "")
		description := req.GetString("description", "")
		path := req.GetString("path", "")
		res := r.ExecuteDevice(downloadArgs(url, title, description, path), "")
		return statusResult(res, "download started")
	}
}
