package cmd

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

// Version is the server version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	cfgHost        string
	cfgPort        int
	cfgUser        string
	cfgPassword    string
	cfgKeyFile     string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgConnTimeout time.Duration
	cfgToolset     string
)

// sessionHandle is the slice of *bridge.Session the root command needs.
// Tests substitute a scripted fake.
type sessionHandle interface {
	Connect() error
	Close() error
	ExecuteDevice(tokens []string, input string) bridge.Result
}

// Allow tests to stub session construction and stdio serving.
var (
	newSessionFunc = func(p bridge.Params, logger *slog.Logger) sessionHandle {
		return bridge.NewSession(p, logger)
	}
	serveStdioFunc = func(s *server.MCPServer) error {
		return server.ServeStdio(s)
	}
)
