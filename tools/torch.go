package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func torchTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_torch",
		mcp.WithDescription("Toggle the LED torch."),
		mcp.WithString("state", mcp.Required(), mcp.Description("Either on or off.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		state, err := req.RequireString("state")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := r.ExecuteDevice([]string{"termux-torch", state}, "")
		return statusResult(res, fmt.Sprintf("torch turned %s", state))
	}
}
