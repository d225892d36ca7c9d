package cmd

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

func TestExecuteExitsOnError(t *testing.T) {
	origExit := exitFunc
	origNew, origServe := newSessionFunc, serveStdioFunc
	t.Cleanup(func() {
		exitFunc = origExit
		newSessionFunc, serveStdioFunc = origNew, origServe
		resetConfig()
		rootCmd.SetArgs(nil)
	})

	var code = -1
	exitFunc = func(c int) { code = c }
	newSessionFunc = func(p bridge.Params, logger *slog.Logger) sessionHandle {
		return &fakeSession{connectErr: errors.New("no route to host")}
	}
	serveStdioFunc = func(s *server.MCPServer) error { return nil }

	rootCmd.SetArgs([]string{"--host", "10.0.0.9"})
	Execute()
	require.Equal(t, 1, code)
}

func TestExecuteSucceeds(t *testing.T) {
	origExit := exitFunc
	origNew, origServe := newSessionFunc, serveStdioFunc
	t.Cleanup(func() {
		exitFunc = origExit
		newSessionFunc, serveStdioFunc = origNew, origServe
		resetConfig()
		rootCmd.SetArgs(nil)
	})

	var code = -1
	exitFunc = func(c int) { code = c }
	newSessionFunc = func(p bridge.Params, logger *slog.Logger) sessionHandle {
		return &fakeSession{}
	}
	serveStdioFunc = func(s *server.MCPServer) error { return nil }

	rootCmd.SetArgs([]string{"--host", "10.0.0.9"})
	Execute()
	require.Equal(t, -1, code)
}
