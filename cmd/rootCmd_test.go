package cmd

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

type fakeSession struct {
	connectErr error
	connects   int
	closes     int
}

func (f *fakeSession) Connect() error { f.connects++; return f.connectErr }
func (f *fakeSession) Close() error   { f.closes++; return nil }
func (f *fakeSession) ExecuteDevice(tokens []string, input string) bridge.Result {
	return bridge.Result{}
}

// resetConfig clears the package-level flag variables between tests.
func resetConfig() {
	cfgHost = ""
	cfgPort = bridge.DefaultPort
	cfgUser = ""
	cfgPassword = ""
	cfgKeyFile = ""
	cfgKnownHosts = ""
	cfgStrictHost = false
	cfgConnTimeout = bridge.DefaultDialTimeout
	cfgToolset = ""
}

// stubServer replaces session construction and stdio serving, returning the
// fake session and a pointer that receives the assembled server.
func stubServer(t *testing.T, fs *fakeSession, serveErr error) **server.MCPServer {
	t.Helper()
	origNew, origServe := newSessionFunc, serveStdioFunc
	t.Cleanup(func() {
		newSessionFunc, serveStdioFunc = origNew, origServe
		resetConfig()
	})

	var captured *server.MCPServer
	newSessionFunc = func(p bridge.Params, logger *slog.Logger) sessionHandle { return fs }
	serveStdioFunc = func(s *server.MCPServer) error {
		captured = s
		return serveErr
	}
	return &captured
}

func TestRootCmdRequiresHost(t *testing.T) {
	fs := &fakeSession{}
	stubServer(t, fs, nil)

	err := rootCmd.RunE(rootCmd, nil)
	require.ErrorContains(t, err, "--host is required")
	require.Zero(t, fs.connects)
}

func TestRootCmdConnectFailureIsFatal(t *testing.T) {
	fs := &fakeSession{connectErr: errors.New("connection refused")}
	stubServer(t, fs, nil)
	cfgHost = "192.168.1.50"

	err := rootCmd.RunE(rootCmd, nil)
	require.ErrorContains(t, err, "ssh connection failed")
	require.Equal(t, 1, fs.connects)
	require.Zero(t, fs.closes)
}

func TestRootCmdServesOnStdio(t *testing.T) {
	fs := &fakeSession{}
	captured := stubServer(t, fs, nil)
	cfgHost = "192.168.1.50"

	err := rootCmd.RunE(rootCmd, nil)
	require.NoError(t, err)
	require.NotNil(t, *captured)
	require.Equal(t, 1, fs.connects)
	require.Equal(t, 1, fs.closes)
}

func TestRootCmdToolsetRestrictsRegistration(t *testing.T) {
	fs := &fakeSession{}
	captured := stubServer(t, fs, nil)
	cfgHost = "192.168.1.50"
	cfgToolset = writeTempToolset(t, `
name: status-only
tools:
  - termux_battery_status
`)

	err := rootCmd.RunE(rootCmd, nil)
	require.NoError(t, err)
	require.NotNil(t, *captured)
}

func TestRootCmdRejectsUnknownToolsetEntry(t *testing.T) {
	fs := &fakeSession{}
	stubServer(t, fs, nil)
	cfgHost = "192.168.1.50"
	cfgToolset = writeTempToolset(t, `
name: typo
tools:
  - termux_batery_status
`)

	err := rootCmd.RunE(rootCmd, nil)
	require.ErrorContains(t, err, "termux_batery_status")
}

func TestRootCmdPropagatesServeError(t *testing.T) {
	fs := &fakeSession{}
	stubServer(t, fs, errors.New("stdio closed"))
	cfgHost = "192.168.1.50"

	err := rootCmd.RunE(rootCmd, nil)
	require.ErrorContains(t, err, "stdio closed")
	require.Equal(t, 1, fs.closes)
}
