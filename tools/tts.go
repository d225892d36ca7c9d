package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var ttsOptionFlags = []optionFlag{
	{key: "engine", flag: "-e"},
	{key: "language", flag: "-l"},
	{key: "region", flag: "-n"},
	{key: "variant", flag: "-v"},
	{key: "pitch", flag: "-p"},
	{key: "rate", flag: "-r"},
	{key: "stream", flag: "-s"},
}

func ttsEnginesTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_tts_engines",
		mcp.WithDescription("Get information about available text-to-speech engines as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-tts-engines"}, ""))
	}
}

func ttsSpeakTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_tts_speak",
		mcp.WithDescription("Speak text with the system text-to-speech engine. Without the text argument the content is read from the server's standard input."),
		mcp.WithString("text", mcp.Description("Text to speak.")),
		mcp.WithObject("options",
			mcp.Description("Speech options: engine, language, region, variant, pitch, rate, stream.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		options := optionsArg(req, "options")
		cmd := appendOptions([]string{"termux-tts-speak"}, options, ttsOptionFlags)

		text := req.GetString("text", "")
		if text != "" {
			res := r.ExecuteDevice(append(cmd, text), "")
			return statusResult(res, "speech started")
		}
		res := r.ExecuteDevice(cmd, readStdin())
		return statusResult(res, "speech started")
	}
}
