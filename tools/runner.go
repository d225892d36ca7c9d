package tools

import "github.com/hyhAsma/termux-api-tools-mcp-server/bridge"

// Runner executes device commands on the remote host. *bridge.Session is the
// production implementation; tests substitute a scripted fake.
type Runner interface {
	ExecuteDevice(tokens []string, input string) bridge.Result
}
