package bridge

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSession replays a scripted Result for any command and records the
// command lines it ran.
type fakeSession struct {
	res    Result
	runErr error
	lines  *[]string
	closed bool
}

func (f *fakeSession) Run(cmd string, stdout, stderr io.Writer) (int, error) {
	if f.lines != nil {
		*f.lines = append(*f.lines, cmd)
	}
	if f.runErr != nil {
		return -1, f.runErr
	}
	_, _ = io.WriteString(stdout, f.res.Stdout)
	_, _ = io.WriteString(stderr, f.res.Stderr)
	return f.res.ExitCode, nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

// fakeClient hands out fakeSessions and counts how often it is dialed/closed.
type fakeClient struct {
	res    Result
	runErr error
	newErr error
	lines  []string
	closed int
}

func (f *fakeClient) NewSession() (execSession, error) {
	if f.newErr != nil {
		return nil, f.newErr
	}
	return &fakeSession{res: f.res, runErr: f.runErr, lines: &f.lines}, nil
}

func (f *fakeClient) Close() error {
	f.closed++
	return nil
}

// stubDial swaps dialSSHFunc for the test and restores it afterwards.
func stubDial(t *testing.T, fn func(Params) (execClient, error)) *int {
	t.Helper()
	calls := new(int)
	orig := dialSSHFunc
	dialSSHFunc = func(p Params) (execClient, error) {
		*calls++
		return fn(p)
	}
	t.Cleanup(func() { dialSSHFunc = orig })
	return calls
}

func TestSession_LazyConnectOnce(t *testing.T) {
	client := &fakeClient{res: Result{Stdout: "{}"}}
	calls := stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	require.False(t, s.Connected())

	res := s.Execute([]string{"termux-battery-status"}, "")
	require.Equal(t, 0, res.ExitCode)
	require.True(t, s.Connected())
	require.Equal(t, 1, *calls)

	// Second call reuses the live transport
	res = s.Execute([]string{"termux-battery-status"}, "")
	require.Equal(t, 0, res.ExitCode)
	require.Equal(t, 1, *calls)
}

func TestSession_ConnectFailureIsData(t *testing.T) {
	calls := stubDial(t, func(Params) (execClient, error) {
		return nil, errors.New("auth refused")
	})

	s := NewSession(Params{Host: "phone"}, nil)
	res := s.Execute([]string{"termux-battery-status"}, "")
	require.Equal(t, 1, res.ExitCode)
	require.Empty(t, res.Stdout)
	require.Contains(t, res.Stderr, "ssh connection failed")
	require.Contains(t, res.Stderr, "auth refused")
	require.False(t, s.Connected())

	// Each execute makes exactly one fresh attempt, no retry loop inside
	_ = s.Execute([]string{"termux-battery-status"}, "")
	require.Equal(t, 2, *calls)
}

func TestSession_ExecuteDevice_StartsAPIBridgeEveryCall(t *testing.T) {
	client := &fakeClient{res: Result{Stdout: "ok"}}
	stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	_ = s.ExecuteDevice([]string{"termux-torch", "on"}, "")
	_ = s.ExecuteDevice([]string{"termux-torch", "off"}, "")

	require.Equal(t, []string{
		"termux-api-start",
		"termux-torch on",
		"termux-api-start",
		"termux-torch off",
	}, client.lines)
}

func TestSession_ExecuteDevice_IgnoresAPIStartFailure(t *testing.T) {
	// Every command, including termux-api-start, fails at the transport.
	// The device command's own failure must still come back as data.
	client := &fakeClient{runErr: errors.New("channel closed")}
	stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	res := s.ExecuteDevice([]string{"termux-torch", "on"}, "")
	require.Equal(t, 1, res.ExitCode)
	require.Contains(t, res.Stderr, "channel closed")
}

func TestSession_SessionFailureMarksDisconnected(t *testing.T) {
	client := &fakeClient{newErr: errors.New("no more channels")}
	calls := stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	res := s.Execute([]string{"termux-battery-status"}, "")
	require.Equal(t, 1, res.ExitCode)
	require.Contains(t, res.Stderr, "ssh session failed")
	require.False(t, s.Connected())

	// Next execute redials
	_ = s.Execute([]string{"termux-battery-status"}, "")
	require.Equal(t, 2, *calls)
}

func TestSession_PipedInputReachesCommandLine(t *testing.T) {
	client := &fakeClient{res: Result{}}
	stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	_ = s.Execute([]string{"termux-clipboard-set"}, "hello world")
	require.Equal(t, []string{"echo 'hello world' | termux-clipboard-set"}, client.lines)
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	client := &fakeClient{res: Result{}}
	stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	_ = s.Execute([]string{"true"}, "")
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.Equal(t, 1, client.closed)
	require.False(t, s.Connected())
}

func TestSession_SerializesExecution(t *testing.T) {
	client := &fakeClient{res: Result{Stdout: "ok"}}
	stubDial(t, func(Params) (execClient, error) { return client, nil })

	s := NewSession(Params{Host: "phone"}, nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.ExecuteDevice([]string{"termux-vibrate"}, "")
		}()
	}
	wg.Wait()

	// With one command in flight at a time, every device command is
	// immediately preceded by its api-start.
	require.Len(t, client.lines, 32)
	for i, line := range client.lines {
		if i%2 == 0 {
			require.Equal(t, "termux-api-start", line)
		} else {
			require.Equal(t, "termux-vibrate", line)
		}
	}
}
