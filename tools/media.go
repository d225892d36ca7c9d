package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func mediaPlayerArgs(command, filePath string) []string {
	cmd := []string{"termux-media-player", command}
	if command == "play" && filePath != "" {
		cmd = append(cmd, filePath)
	}
	return cmd
}

func mediaPlayerTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_media_player",
		mcp.WithDescription("Play media files or control playback."),
		mcp.WithString("command", mcp.Required(),
			mcp.Description("Player command: play, pause, stop, or info.")),
		mcp.WithString("file_path", mcp.Description("Media file to play (play command only).")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		command, err := req.RequireString("command")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filePath := req.GetString("file_path", "")
		res := r.ExecuteDevice(mediaPlayerArgs(command, filePath), "")
		// The player reports through stdout regardless of exit status; an
		// empty report means the command was accepted silently.
		out := strings.TrimSpace(res.Stdout)
		if out == "" {
			out = fmt.Sprintf("media player command %q executed", command)
		}
		return mcp.NewToolResultText(out), nil
	}
}

func mediaScanArgs(files []string, recursive, verbose bool) []string {
	cmd := []string{"termux-media-scan"}
	if recursive {
		cmd = append(cmd, "-r")
	}
	if verbose {
		cmd = append(cmd, "-v")
	}
	return append(cmd, files...)
}

func mediaScanTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_media_scan",
		mcp.WithDescription("Scan files and add them to the media content provider."),
		mcp.WithArray("files", mcp.Required(),
			mcp.Description("Files or directories on the device to scan."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("recursive", mcp.DefaultBool(false),
			mcp.Description("Scan directories recursively.")),
		mcp.WithBoolean("verbose", mcp.DefaultBool(false),
			mcp.Description("Verbose scan output.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files := stringSliceArg(req, "files")
		if len(files) == 0 {
			return mcp.NewToolResultError("files is required"), nil
		}
		recursive := req.GetBool("recursive", false)
		verbose := req.GetBool("verbose", false)
		res := r.ExecuteDevice(mediaScanArgs(files, recursive, verbose), "")
		if out := strings.TrimSpace(res.Stdout); out != "" {
			return mcp.NewToolResultText(res.Stdout), nil
		}
		return mcp.NewToolResultText("media scan finished"), nil
	}
}
