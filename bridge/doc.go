// Package bridge owns the SSH channel to the Termux device.
//
// A Session wraps one lazily established, reusable SSH connection and runs
// termux-api command lines on it, one at a time. Results come back as a
// Result triple (stdout, stderr, exit code); remote failures are data, not
// errors, so every tool handler can branch on the exit code uniformly.
//
// New contributors should start with session.go for the connect/execute
// lifecycle, quote.go for how command lines are assembled, and decode.go for
// how raw output becomes tool results.
package bridge
