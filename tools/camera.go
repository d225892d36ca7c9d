package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func cameraInfoTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_camera_info",
		mcp.WithDescription("Get information about the device cameras as JSON."),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.ExecuteDevice([]string{"termux-camera-info"}, ""))
	}
}

// cameraPhotoArgs builds the termux-camera-photo invocation. Camera 0 is the
// default and emits no -c flag; the output path is positional and last.
func cameraPhotoArgs(outputFile string, cameraID int) []string {
	cmd := []string{"termux-camera-photo"}
	if cameraID != 0 {
		cmd = append(cmd, "-c", strconv.Itoa(cameraID))
	}
	return append(cmd, outputFile)
}

func cameraPhotoTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_camera_photo",
		mcp.WithDescription("Take a JPEG photo with the given camera and save it on the device."),
		mcp.WithString("output_file", mcp.Required(),
			mcp.Description("Path on the device to write the photo to.")),
		mcp.WithNumber("camera_id", mcp.DefaultNumber(0),
			mcp.Description("ID of the camera to use, from termux_camera_info.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outputFile, err := req.RequireString("output_file")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cameraID := req.GetInt("camera_id", 0)
		res := r.ExecuteDevice(cameraPhotoArgs(outputFile, cameraID), "")
		return statusResult(res, fmt.Sprintf("photo saved to %s", outputFile))
	}
}
