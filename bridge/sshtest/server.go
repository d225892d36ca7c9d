// Package sshtest provides a scripted in-process SSH server for exercising
// the bridge against a real transport. It accepts any credentials and
// answers each exec request from a fixed script of canned responses.
package sshtest

import (
	"crypto/rand"
	"crypto/rsa"
	"net"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Response is the canned outcome for one scripted command line.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Script maps exact remote command lines to their canned responses.
// Command lines not present in the script exit 127 with a shell-style
// "not found" message on stderr.
type Script map[string]Response

// Server is a running scripted SSH server.
type Server struct {
	ln     net.Listener
	script Script

	stopCh chan struct{}
	done   chan struct{}

	mu       sync.Mutex
	commands []string
}

// Start launches the server on a loopback port. Callers must Stop it.
func Start(script Script) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	s := &Server{
		ln:     ln,
		script: script,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	go s.serve()
	return s, nil
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string { return s.ln.Addr().String() }

// Commands returns every exec command line received so far, in order.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.commands))
	copy(out, s.commands)
	return out
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	close(s.stopCh)
	_ = s.ln.Close()
	<-s.done
}

func (s *Server) serve() {
	defer close(s.done)

	priv, _ := rsa.GenerateKey(rand.Reader, 2048)
	signer, _ := ssh.NewSignerFromKey(priv)
	cfg := &ssh.ServerConfig{
		// Any password or key is accepted; the tests exercise command
		// execution, not authentication.
		NoClientAuth: true,
		PasswordCallback: func(_ ssh.ConnMetadata, _ []byte) (*ssh.Permissions, error) {
			return nil, nil
		},
		PublicKeyCallback: func(_ ssh.ConnMetadata, _ ssh.PublicKey) (*ssh.Permissions, error) {
			return nil, nil
		},
	}
	cfg.AddHostKey(signer)

	for {
		_ = s.ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
		conn, err := s.ln.Accept()
		select {
		case <-s.stopCh:
			if conn != nil {
				_ = conn.Close()
			}
			return
		default:
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			continue
		}
		go s.handleConn(conn, cfg)
	}
}

func (s *Server) handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer sc.Close()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, chReqs)
	}
}

// exitStatusMsg is the exit-status channel request payload (RFC 4254 §6.10).
type exitStatusMsg struct {
	Status uint32
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer ch.Close()
	for req := range in {
		switch req.Type {
		case "exec":
			var p struct{ Command string }
			_ = ssh.Unmarshal(req.Payload, &p)
			_ = req.Reply(true, nil)

			s.mu.Lock()
			s.commands = append(s.commands, p.Command)
			resp, ok := s.script[p.Command]
			s.mu.Unlock()
			if !ok {
				resp = Response{Stderr: "sh: " + p.Command + ": command not found\n", ExitCode: 127}
			}

			if resp.Stdout != "" {
				_, _ = ch.Write([]byte(resp.Stdout))
			}
			if resp.Stderr != "" {
				_, _ = ch.Stderr().Write([]byte(resp.Stderr))
			}
			_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&exitStatusMsg{Status: uint32(resp.ExitCode)}))
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}
