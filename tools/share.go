package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var shareOptionFlags = []optionFlag{
	{key: "action", flag: "-a"},
	{key: "content_type", flag: "-c"},
	{key: "default_receiver", flag: "-d", bare: true},
	{key: "title", flag: "-t"},
}

func shareArgs(filePath string, options map[string]any) []string {
	cmd := []string{"termux-share"}
	cmd = appendOptions(cmd, options, shareOptionFlags)
	if filePath != "" {
		cmd = append(cmd, filePath)
	}
	return cmd
}

func shareTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_share",
		mcp.WithDescription("Share a file or text content through the system share sheet."),
		mcp.WithString("file_path", mcp.Description("File on the device to share.")),
		mcp.WithString("content", mcp.Description("Text content to share instead of a file.")),
		mcp.WithObject("options",
			mcp.Description("Share options: action (edit/send/view), content_type, default_receiver, title.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath := req.GetString("file_path", "")
		content := req.GetString("content", "")
		options := optionsArg(req, "options")

		// A file path wins over inline content; inline content goes in
		// through the stdin pipe.
		switch {
		case filePath != "":
			return statusResult(r.ExecuteDevice(shareArgs(filePath, options), ""), "content shared")
		case content != "":
			return statusResult(r.ExecuteDevice(shareArgs("", options), content), "content shared")
		default:
			return mcp.NewToolResultError("either file_path or content is required"), nil
		}
	}
}
