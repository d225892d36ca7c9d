package bridge

import (
	"net"
	"strconv"
	"time"
)

// DefaultPort is the port the Termux sshd listens on by default.
const DefaultPort = 8022

// DefaultDialTimeout bounds the TCP connect to the device.
const DefaultDialTimeout = 15 * time.Second

// Params holds the SSH connection parameters for one device. Immutable once
// a Session has been constructed from them.
type Params struct {
	Host     string
	Port     int
	User     string
	Password string
	KeyFile  string

	// KnownHosts and StrictHostKey control host key verification. The
	// default accepts any host key, matching typical first-contact setup
	// against a phone on the local network.
	KnownHosts    string
	StrictHostKey bool

	DialTimeout time.Duration
}

// addr returns the host:port dial target, applying defaults.
func (p Params) addr() string {
	port := p.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(p.Host, strconv.Itoa(port))
}

func (p Params) dialTimeout() time.Duration {
	if p.DialTimeout <= 0 {
		return DefaultDialTimeout
	}
	return p.DialTimeout
}
