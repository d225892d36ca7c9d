package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func usbAccessArgs(device string, showRequest bool, command string) []string {
	cmd := []string{"termux-usb"}
	if showRequest {
		cmd = append(cmd, "-r")
	}
	if command != "" {
		cmd = append(cmd, "-e", command)
	}
	return append(cmd, device)
}

func usbTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_usb",
		mcp.WithDescription("List or access USB devices."),
		mcp.WithString("action", mcp.DefaultString("list"),
			mcp.Description("Either list or access.")),
		mcp.WithString("device", mcp.Description("Device path, required for the access action.")),
		mcp.WithBoolean("show_request", mcp.DefaultBool(false),
			mcp.Description("Show the permission request dialog before accessing.")),
		mcp.WithString("command", mcp.Description("Command to execute with the device file descriptor.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action := req.GetString("action", "list")
		device := req.GetString("device", "")

		switch {
		case action == "list":
			return jsonResult(r.ExecuteDevice([]string{"termux-usb", "-l"}, ""))
		case action == "access" && device != "":
			showRequest := req.GetBool("show_request", false)
			command := req.GetString("command", "")
			res := r.ExecuteDevice(usbAccessArgs(device, showRequest, command), "")
			return textResult(res, false)
		default:
			return mcp.NewToolResultError("invalid action or missing device"), nil
		}
	}
}
