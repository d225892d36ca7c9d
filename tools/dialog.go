package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// dialogOptionFlags maps dialog option keys to termux-dialog flags. Which
// keys a widget honors depends on the widget type; the device tool ignores
// flags that do not apply.
var dialogOptionFlags = []optionFlag{
	{key: "hint", flag: "-i"},
	{key: "values", flag: "-v"},
	{key: "range", flag: "-r"},
	{key: "multiple", flag: "-m", bare: true},
	{key: "number", flag: "-n", bare: true},
	{key: "password", flag: "-p", bare: true},
	{key: "date_format", flag: "-d"},
}

func dialogArgs(widget, title string, options map[string]any) []string {
	cmd := []string{"termux-dialog", widget}
	if title != "" {
		cmd = append(cmd, "-t", title)
	}
	return appendOptions(cmd, options, dialogOptionFlags)
}

func dialogTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_dialog",
		mcp.WithDescription("Show a dialog widget on the device and return the user's input as JSON."),
		mcp.WithString("widget", mcp.DefaultString("text"),
			mcp.Description("Widget type: confirm, checkbox, counter, date, radio, sheet, spinner, speech, text, or time.")),
		mcp.WithString("title", mcp.Description("Dialog title.")),
		mcp.WithObject("options",
			mcp.Description("Widget options: hint, values (comma separated), range, multiple, number, password, date_format.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		widget := req.GetString("widget", "text")
		title := req.GetString("title", "")
		options := optionsArg(req, "options")
		return jsonResult(r.ExecuteDevice(dialogArgs(widget, title, options), ""))
	}
}
