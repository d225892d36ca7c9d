package bridge

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoOutput is the sentinel for commands that failed without writing
// anything to stderr.
var ErrNoOutput = errors.New("no output")

// failure converts a non-OK result into its error, preferring the remote
// stderr text and falling back to the no-output sentinel.
func (r Result) failure() error {
	if msg := strings.TrimSpace(r.Stderr); msg != "" {
		return errors.New(msg)
	}
	return ErrNoOutput
}

// DecodeJSON interprets stdout as JSON. It requires a zero exit and
// non-empty output; anything else, including malformed JSON, is an error.
func (r Result) DecodeJSON() (any, error) {
	if !r.OK() || r.Stdout == "" {
		return nil, r.failure()
	}
	var v any
	if err := json.Unmarshal([]byte(r.Stdout), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// LenientJSON decodes stdout as JSON when possible and otherwise hands the
// raw text back unchanged. Some termux tools interleave non-JSON diagnostics
// with their output, so parse failures are swallowed here on purpose. Empty
// output is still an error.
func (r Result) LenientJSON() (any, error) {
	if r.Stdout == "" {
		return nil, r.failure()
	}
	var v any
	if err := json.Unmarshal([]byte(r.Stdout), &v); err != nil {
		return r.Stdout, nil
	}
	return v, nil
}

// Text returns stdout on success, optionally trimmed, and the failure reason
// otherwise.
func (r Result) Text(trim bool) (string, error) {
	if !r.OK() {
		return "", r.failure()
	}
	if trim {
		return strings.TrimSpace(r.Stdout), nil
	}
	return r.Stdout, nil
}

// Status maps a successful exit to a fixed confirmation message for commands
// whose output carries no information of its own.
func (r Result) Status(confirm string) (string, error) {
	if !r.OK() {
		return "", r.failure()
	}
	return confirm, nil
}
