package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// notificationOptionFlags maps the free-form notification options to the
// long flags of termux-notification. The flag names must match the device
// tool exactly.
var notificationOptionFlags = []optionFlag{
	{key: "action", flag: "--action"},
	{key: "alert_once", flag: "--alert-once", bare: true},
	{key: "button1", flag: "--button1"},
	{key: "button1_action", flag: "--button1-action"},
	{key: "button2", flag: "--button2"},
	{key: "button2_action", flag: "--button2-action"},
	{key: "button3", flag: "--button3"},
	{key: "button3_action", flag: "--button3-action"},
	{key: "group", flag: "--group"},
	{key: "image_path", flag: "--image-path"},
	{key: "led_color", flag: "--led-color"},
	{key: "led_off", flag: "--led-off"},
	{key: "led_on", flag: "--led-on"},
	{key: "on_delete", flag: "--on-delete"},
	{key: "ongoing", flag: "--ongoing", bare: true},
	{key: "priority", flag: "--priority"},
	{key: "sound", flag: "--sound", bare: true},
	{key: "vibrate", flag: "--vibrate"},
	{key: "type", flag: "--type"},
	{key: "media_next", flag: "--media-next"},
	{key: "media_pause", flag: "--media-pause"},
	{key: "media_play", flag: "--media-play"},
	{key: "media_previous", flag: "--media-previous"},
}

func notificationArgs(content, title, id string, options map[string]any) []string {
	cmd := []string{"termux-notification"}
	if content != "" {
		cmd = append(cmd, "--content", content)
	}
	if title != "" {
		cmd = append(cmd, "--title", title)
	}
	if id != "" {
		cmd = append(cmd, "--id", id)
	}
	return appendOptions(cmd, options, notificationOptionFlags)
}

func notificationTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_notification",
		mcp.WithDescription("Show a system notification on the device."),
		mcp.WithString("content", mcp.Description("Notification body text.")),
		mcp.WithString("title", mcp.Description("Notification title.")),
		mcp.WithString("id", mcp.Description("Notification id, for later updates or removal.")),
		mcp.WithObject("options",
			mcp.Description("Extra options: action, alert_once, button1..button3 (+_action), group, image_path, led_color, led_on, led_off, on_delete, ongoing, priority, sound, vibrate, type, media_next/pause/play/previous.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content := req.GetString("content", "")
		title := req.GetString("title", "")
		id := req.GetString("id", "")
		options := optionsArg(req, "options")
		res := r.ExecuteDevice(notificationArgs(content, title, id, options), "")
		return statusResult(res, "notification shown")
	}
}

func notificationRemoveTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_notification_remove",
		mcp.WithDescription("Remove a previously shown notification."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Id of the notification to remove.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := r.ExecuteDevice([]string{"termux-notification-remove", id}, "")
		return statusResult(res, fmt.Sprintf("notification %s removed", id))
	}
}
