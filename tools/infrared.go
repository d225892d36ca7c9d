package tools

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func infraredFrequenciesTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_infrared_frequencies",
		mcp.WithDescription("Query the carrier frequencies supported by the infrared transmitter as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-infrared-frequencies"}, ""))
	}
}

func infraredTransmitTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_infrared_transmit",
		mcp.WithDescription("Transmit an infrared pattern."),
		mcp.WithNumber("frequency", mcp.Required(),
			mcp.Description("Carrier frequency in Hz.")),
		mcp.WithString("pattern", mcp.Required(),
			mcp.Description("Comma separated on/off pattern in microseconds.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		frequency, err := req.RequireInt("frequency")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		pattern, err := req.RequireString("pattern")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cmd := []string{"termux-infrared-transmit", "-f", strconv.Itoa(frequency), pattern}
		return statusResult(r.ExecuteDevice(cmd, ""), "infrared pattern transmitted")
	}
}
