package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
	"github.com/hyhAsma/termux-api-tools-mcp-server/tools"
)

var rootCmd = &cobra.Command{
	Use:   "termux-mcp",
	Short: "MCP server exposing termux-api tools on a remote Android device",
	Long: "Serves the Model Context Protocol on stdio and relays each tool call to the corresponding termux-api " +
		"command on an Android device over SSH. The connection is established once up front and reused for the " +
		"lifetime of the server.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgHost == "" {
			return errors.New("--host is required (device address)")
		}

		var allow []string
		if cfgToolset != "" {
			ts, err := loadToolset(cfgToolset)
			if err != nil {
				return fmt.Errorf("failed to read toolset: %w", err)
			}
			allow = ts.Tools
		}

		// All logging goes to stderr; stdout carries the MCP stdio framing.
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		sess := newSessionFunc(bridge.Params{
			Host:          cfgHost,
			Port:          cfgPort,
			User:          cfgUser,
			Password:      cfgPassword,
			KeyFile:       cfgKeyFile,
			KnownHosts:    cfgKnownHosts,
			StrictHostKey: cfgStrictHost,
			DialTimeout:   cfgConnTimeout,
		}, logger)

		// Connect eagerly so a bad address or credential fails at startup
		// instead of on the first tool call.
		if err := sess.Connect(); err != nil {
			return fmt.Errorf("ssh connection failed: %w", err)
		}
		defer func() { _ = sess.Close() }()

		s := server.NewMCPServer("termux-mcp", Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		)
		if err := tools.Register(s, sess, allow); err != nil {
			return err
		}

		logger.Info("serving MCP on stdio", "host", cfgHost, "tools", len(tools.Names()))
		return serveStdioFunc(s)
	},
}
