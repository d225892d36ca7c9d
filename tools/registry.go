package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolFunc builds one tool definition and its handler bound to a Runner.
type toolFunc func(r Runner) (mcp.Tool, server.ToolHandlerFunc)

// registry lists every device tool in registration order.
var registry = []toolFunc{
	batteryStatusTool,
	brightnessTool,
	callLogTool,
	cameraInfoTool,
	cameraPhotoTool,
	clipboardGetTool,
	clipboardSetTool,
	contactListTool,
	dialogTool,
	downloadTool,
	fingerprintTool,
	infraredFrequenciesTool,
	infraredTransmitTool,
	locationTool,
	mediaPlayerTool,
	mediaScanTool,
	microphoneRecordTool,
	notificationTool,
	notificationRemoveTool,
	sensorTool,
	shareTool,
	smsListTool,
	smsSendTool,
	storageGetTool,
	telephonyCallTool,
	telephonyCellinfoTool,
	telephonyDeviceinfoTool,
	toastTool,
	torchTool,
	ttsEnginesTool,
	ttsSpeakTool,
	usbTool,
	vibrateTool,
	volumeTool,
	wallpaperTool,
	wifiConnectioninfoTool,
	wifiEnableTool,
	wifiScaninfoTool,
}

// boundTool pairs a tool definition with its handler.
type boundTool struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// selectTools instantiates the registry against a Runner and filters it by
// the allow list. A nil or empty allow list selects everything; names in the
// allow list that match no tool are an error so a typo in a toolset manifest
// fails loudly at startup.
func selectTools(r Runner, allow []string) ([]boundTool, error) {
	allowed := make(map[string]bool, len(allow))
	for _, name := range allow {
		allowed[name] = true
	}

	var sel []boundTool
	for _, fn := range registry {
		t, h := fn(r)
		if len(allowed) > 0 && !allowed[t.Name] {
			continue
		}
		delete(allowed, t.Name)
		sel = append(sel, boundTool{tool: t, handler: h})
	}
	if len(allow) > 0 {
		for name, pending := range allowed {
			if pending {
				return nil, fmt.Errorf("toolset names unknown tool %q", name)
			}
		}
	}
	return sel, nil
}

// Names returns every registered tool name in registration order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, fn := range registry {
		t, _ := fn(nil)
		names = append(names, t.Name)
	}
	return names
}

// Register adds the device tools to the MCP server. allow restricts
// registration to the named tools; nil registers everything.
func Register(s *server.MCPServer, r Runner, allow []string) error {
	sel, err := selectTools(r, allow)
	if err != nil {
		return err
	}
	for _, bt := range sel {
		s.AddTool(bt.tool, bt.handler)
	}
	return nil
}
