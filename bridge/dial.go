package bridge

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// dialSSH establishes an SSH client connection to the device.
func dialSSH(p Params) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	if p.KeyFile != "" {
		signer, err := loadSigner(p.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if p.Password != "" {
		auths = append(auths, ssh.Password(p.Password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	var hostKeyCB ssh.HostKeyCallback
	if p.StrictHostKey {
		// Require a known_hosts entry; fail closed when the file is absent
		if _, err := os.Stat(p.KnownHosts); err != nil {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", p.KnownHosts)
		}
		cb, err := knownhosts.New(p.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("known_hosts: %w", err)
		}
		hostKeyCB = cb
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	cfg := &ssh.ClientConfig{
		User:            p.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         p.dialTimeout(),
	}

	// Use explicit net.Dialer for connection timeout
	d := net.Dialer{Timeout: p.dialTimeout()}
	conn, err := d.Dial("tcp", p.addr())
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, p.addr(), cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}

// loadSigner loads a private key from disk. Encrypted keys are rejected with
// a hint, since no passphrase parameter exists on the connection surface.
func loadSigner(path string) (ssh.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ssh.ParsePrivateKey(b)
	if err == nil {
		return s, nil
	}
	if _, ok := err.(*ssh.PassphraseMissingError); ok {
		return nil, fmt.Errorf("private key %s is encrypted; decrypt it or use password authentication", path)
	}
	return nil, err
}
