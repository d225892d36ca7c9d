package bridge

import (
	"errors"
	"io"

	"golang.org/x/crypto/ssh"
)

// execClient is a minimal interface to obtain a command session.
type execClient interface {
	NewSession() (execSession, error)
	Close() error
}

// execSession runs one remote command, streaming stdout and stderr into the
// supplied writers, and reports the remote exit status. A non-nil error means
// the transport failed, not that the command exited non-zero.
type execSession interface {
	Run(cmd string, stdout, stderr io.Writer) (int, error)
	Close() error
}

// sshClientWrapper adapts *ssh.Client to execClient
type sshClientWrapper struct {
	c *ssh.Client
}

func (w sshClientWrapper) NewSession() (execSession, error) {
	s, err := w.c.NewSession()
	if err != nil {
		return nil, err
	}
	return sshSessionWrapper{s}, nil
}

func (w sshClientWrapper) Close() error { return w.c.Close() }

// sshSessionWrapper adapts *ssh.Session to the internal execSession interface
// so callers can remain oblivious to the concrete SSH transport.
type sshSessionWrapper struct {
	s *ssh.Session
}

func (w sshSessionWrapper) Run(cmd string, stdout, stderr io.Writer) (int, error) {
	w.s.Stdout = stdout
	w.s.Stderr = stderr
	err := w.s.Run(cmd)
	if err == nil {
		return 0, nil
	}
	// Non-zero exits surface as *ssh.ExitError; everything else is transport
	var ee *ssh.ExitError
	if errors.As(err, &ee) {
		return ee.ExitStatus(), nil
	}
	return -1, err
}

func (w sshSessionWrapper) Close() error {
	err := w.s.Close()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
