package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// sensorOptionFlags apply to the continuous read actions.
var sensorOptionFlags = []optionFlag{
	{key: "delay", flag: "-d"},
	{key: "limit", flag: "-n"},
}

func sensorArgs(action string, options map[string]any) []string {
	cmd := []string{"termux-sensor"}
	switch action {
	case "list":
		cmd = append(cmd, "-l")
	case "all":
		cmd = append(cmd, "-a")
	case "cleanup":
		cmd = append(cmd, "-c")
	case "sensors":
		if s, ok := options["sensors"]; ok {
			cmd = append(cmd, "-s", stringify(s))
		}
	}
	return appendOptions(cmd, options, sensorOptionFlags)
}

func sensorTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_sensor",
		mcp.WithDescription("List device sensors or read live sensor data."),
		mcp.WithString("action", mcp.DefaultString("list"),
			mcp.Description("One of list, all, sensors, or cleanup.")),
		mcp.WithObject("options",
			mcp.Description("Options: sensors (comma separated names, for the sensors action), delay (ms), limit (number of readings).")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action := req.GetString("action", "list")
		options := optionsArg(req, "options")
		res := r.ExecuteDevice(sensorArgs(action, options), "")
		if action == "cleanup" {
			return statusResult(res, "sensor resources released")
		}
		return lenientResult(res)
	}
}
