package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func wallpaperArgs(filePath, url string, lockscreen bool) []string {
	cmd := []string{"termux-wallpaper"}
	if filePath != "" {
		cmd = append(cmd, "-f", filePath)
	} else {
		cmd = append(cmd, "-u", url)
	}
	if lockscreen {
		cmd = append(cmd, "-l")
	}
	return cmd
}

func wallpaperTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_wallpaper",
		mcp.WithDescription("Change the device wallpaper from a local file or a URL."),
		mcp.WithString("file_path", mcp.Description("Path to an image file on the device.")),
		mcp.WithString("url", mcp.Description("URL of an image to download and use.")),
		mcp.WithBoolean("lockscreen", mcp.DefaultBool(false),
			mcp.Description("Set the lockscreen wallpaper instead of the home screen.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath := req.GetString("file_path", "")
		url := req.GetString("url", "")
		if filePath == "" && url == "" {
			return mcp.NewToolResultError("either file_path or url is required"), nil
		}
		lockscreen := req.GetBool("lockscreen", false)
		res := r.ExecuteDevice(wallpaperArgs(filePath, url, lockscreen), "")
		return statusResult(res, "wallpaper set")
	}
}
