package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyhAsma/termux-api-tools-mcp-server/bridge"
)

// init configures the root command's flags and binds them to environment
// variables via Viper so operators can configure the server entirely from the
// MCP client's env block (TERMUX_SSH_HOST, TERMUX_SSH_PASSWORD, ...).
func init() {
	rootCmd.Flags().StringVar(&cfgHost, "host", "", "Device address (IP or hostname)")
	rootCmd.Flags().IntVar(&cfgPort, "port", bridge.DefaultPort, "Device sshd port")
	rootCmd.Flags().StringVarP(&cfgUser, "username", "u", "", "SSH username (Termux ignores it but sshd wants one)")
	rootCmd.Flags().StringVar(&cfgPassword, "password", "", "SSH password (or set TERMUX_SSH_PASSWORD)")
	rootCmd.Flags().StringVar(&cfgKeyFile, "key-file", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.Flags().StringVar(&cfgKnownHosts, "known-hosts", "", "Path to known_hosts file")
	rootCmd.Flags().BoolVar(&cfgStrictHost, "strict-host-key", false, "Require host key verification against known-hosts")
	rootCmd.Flags().DurationVar(&cfgConnTimeout, "conn-timeout", bridge.DefaultDialTimeout, "Connection timeout")
	rootCmd.Flags().StringVar(&cfgToolset, "toolset", "", "Path to a YAML toolset restricting which tools are exposed")

	_ = viper.BindPFlag("host", rootCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("port", rootCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("user", rootCmd.Flags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.Flags().Lookup("password"))
	_ = viper.BindPFlag("key-file", rootCmd.Flags().Lookup("key-file"))
	_ = viper.BindPFlag("known-hosts", rootCmd.Flags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.Flags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.Flags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("toolset", rootCmd.Flags().Lookup("toolset"))

	viper.SetEnvPrefix("TERMUX_SSH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("host"); v != "" {
			cfgHost = v
		}
		if viper.IsSet("port") {
			if p := viper.GetInt("port"); p != 0 {
				cfgPort = p
			}
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("key-file"); v != "" {
			cfgKeyFile = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("toolset"); v != "" {
			cfgToolset = v
		}
	})
}
