package bridge

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
)

// apiStartCommand starts the on-device API bridge service that every
// termux-api tool depends on. It is idempotent on the device side.
const apiStartCommand = "termux-api-start"

// dialSSHFunc allows tests to stub transport establishment.
var dialSSHFunc = func(p Params) (execClient, error) {
	c, err := dialSSH(p)
	if err != nil {
		return nil, err
	}
	return sshClientWrapper{c}, nil
}

// Session owns a single lazily established, reusable SSH connection to the
// device. All command execution is serialized through one mutex: the calling
// MCP server may invoke tools concurrently, and interleaved reads on one
// transport would corrupt result pairing.
type Session struct {
	params Params
	logger *slog.Logger

	mu        sync.Mutex
	client    execClient
	connected bool
}

// NewSession creates a Session for the given parameters. No connection is
// made until the first Connect or Execute call.
func NewSession(p Params, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{params: p, logger: logger}
}

// Connect establishes the SSH transport. On failure the session records the
// disconnected state and returns the reason.
func (s *Session) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked()
}

func (s *Session) connectLocked() error {
	if s.client != nil {
		_ = s.client.Close()
		s.client = nil
	}
	c, err := dialSSHFunc(s.params)
	if err != nil {
		s.connected = false
		s.logger.Error("ssh connection failed", "host", s.params.Host, "err", err)
		return err
	}
	s.client = c
	s.connected = true
	s.logger.Debug("ssh connected", "addr", s.params.addr())
	return nil
}

// ensureConnectedLocked returns immediately when a transport is live and
// otherwise attempts to connect exactly once. No retry loop, no backoff.
func (s *Session) ensureConnectedLocked() error {
	if s.connected && s.client != nil {
		return nil
	}
	return s.connectLocked()
}

// Connected reports whether the last connect attempt succeeded with no
// intervening close or failure.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Execute runs one remote command built from tokens, optionally piping input
// to its stdin. Failures never escape as errors: a connection or transport
// problem synthesizes a Result with exit code 1 and the reason in Stderr.
func (s *Session) Execute(tokens []string, input string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeLocked(commandLine(tokens, input))
}

// ExecuteDevice runs a termux-api command. The on-device API bridge may not
// be running, so termux-api-start is issued first on every call, fire and
// forget; its outcome is deliberately ignored.
func (s *Session) ExecuteDevice(tokens []string, input string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.executeLocked(apiStartCommand)
	return s.executeLocked(commandLine(tokens, input))
}

func (s *Session) executeLocked(line string) Result {
	if err := s.ensureConnectedLocked(); err != nil {
		return Result{Stderr: fmt.Sprintf("ssh connection failed: %v", err), ExitCode: 1}
	}

	sess, err := s.client.NewSession()
	if err != nil {
		// The connection is likely dead; drop it so the next call redials.
		s.connected = false
		return Result{Stderr: fmt.Sprintf("ssh session failed: %v", err), ExitCode: 1}
	}
	defer func() { _ = sess.Close() }()

	var stdout, stderr bytes.Buffer
	code, err := sess.Run(line, &stdout, &stderr)
	if err != nil {
		s.connected = false
		return Result{
			Stdout:   stdout.String(),
			Stderr:   fmt.Sprintf("command failed: %v", err),
			ExitCode: 1,
		}
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// Close releases the transport. Safe to call multiple times.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}
