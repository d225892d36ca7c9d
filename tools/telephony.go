package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func telephonyCallTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_telephony_call",
		mcp.WithDescription("Call a phone number."),
		mcp.WithString("number", mcp.Required(), mcp.Description("Phone number to call.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number, err := req.RequireString("number")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := r.ExecuteDevice([]string{"termux-telephony-call", number}, "")
		return statusResult(res, fmt.Sprintf("calling %s", number))
	}
}

func telephonyCellinfoTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_telephony_cellinfo",
		mcp.WithDescription("Get information about the primary and neighboring radio cells as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-telephony-cellinfo"}, ""))
	}
}

func telephonyDeviceinfoTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_telephony_deviceinfo",
		mcp.WithDescription("Get telephony device information as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-telephony-deviceinfo"}, ""))
	}
}
