// Package tools defines the MCP tools that expose the termux-api surface of
// a connected device.
//
// Every tool file follows the same shape: a pure argument-builder that
// translates the tool's parameters into a termux command-line token vector
// (flags are omitted when a value matches the tool's documented default, and
// positional arguments always come last), and an MCP handler that runs the
// command through a Runner and decodes the result per the tool's category
// (JSON, plain text, or a fixed confirmation).
//
// registry.go lists every tool; Register wires them onto an MCP server.
package tools
