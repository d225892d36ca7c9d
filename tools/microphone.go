package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// micOptionFlags maps recording options to termux-microphone-record flags.
// They only apply to the start action.
var micOptionFlags = []optionFlag{
	{key: "file", flag: "-f"},
	{key: "limit", flag: "-l"},
	{key: "encoder", flag: "-e"},
	{key: "bitrate", flag: "-b"},
	{key: "rate", flag: "-r"},
	{key: "channels", flag: "-c"},
}

func microphoneRecordArgs(action string, options map[string]any) []string {
	cmd := []string{"termux-microphone-record"}
	switch action {
	case "start":
		cmd = append(cmd, "-d")
		cmd = appendOptions(cmd, options, micOptionFlags)
	case "info":
		cmd = append(cmd, "-i")
	case "stop":
		cmd = append(cmd, "-q")
	}
	return cmd
}

func microphoneRecordTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_microphone_record",
		mcp.WithDescription("Record with the device microphone."),
		mcp.WithString("action", mcp.Required(),
			mcp.Description("One of start, info, or stop.")),
		mcp.WithObject("options",
			mcp.Description("Recording options for start: file, limit (seconds), encoder, bitrate, rate, channels.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action, err := req.RequireString("action")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		options := optionsArg(req, "options")
		switch action {
		case "start", "info", "stop":
		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown action %q", action)), nil
		}

		res := r.ExecuteDevice(microphoneRecordArgs(action, options), "")
		switch action {
		case "start":
			return statusResult(res, "recording started")
		case "stop":
			return statusResult(res, "recording stopped")
		default:
			return lenientResult(res)
		}
	}
}
