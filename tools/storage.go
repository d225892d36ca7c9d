package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func storageGetTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_storage_get",
		mcp.WithDescription("Request a file from the system file picker and write it to the given path on the device."),
		mcp.WithString("output_file", mcp.Required(),
			mcp.Description("Path on the device to write the picked file to.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outputFile, err := req.RequireString("output_file")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := r.ExecuteDevice([]string{"termux-storage-get", outputFile}, "")
		return statusResult(res, fmt.Sprintf("file saved to %s", outputFile))
	}
}
