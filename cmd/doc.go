// Package cmd implements the termux-mcp command-line interface.
//
// The binary runs an MCP server on stdio that exposes the termux-api command
// suite of a remote Android device. Configuration comes in through flags and
// TERMUX_SSH_* environment variables; the SSH session to the device is owned
// by the bridge package.
//
// New contributors should start with rootCmd.go to see how cobra is wired
// and how the server is assembled, and loadToolset.go for the optional
// toolset manifest that restricts which tools get registered.
package cmd
