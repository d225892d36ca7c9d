package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// volumeTool reads all stream volumes when called without arguments, reads a
// single stream when given only the stream name, and sets the level when
// given both.
func volumeTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_volume",
		mcp.WithDescription("Read or change the volume of an audio stream. Without arguments all stream volumes are returned as JSON."),
		mcp.WithString("stream", mcp.Description("Audio stream: alarm, music, notification, ring, system, or call.")),
		mcp.WithNumber("volume", mcp.Description("Volume level to set.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stream := req.GetString("stream", "")
		if stream == "" {
			return jsonResult(r.ExecuteDevice([]string{"termux-volume"}, ""))
		}
		if !hasArg(req, "volume") {
			return jsonResult(r.ExecuteDevice([]string{"termux-volume", stream}, ""))
		}
		volume := req.GetInt("volume", 0)
		res := r.ExecuteDevice([]string{"termux-volume", stream, strconv.Itoa(volume)}, "")
		return statusResult(res, fmt.Sprintf("%s volume set to %d", stream, volume))
	}
}
