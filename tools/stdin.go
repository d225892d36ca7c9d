package tools

import (
	"io"
	"os"
)

// readStdin sources a text payload from the server's standard input when a
// text-accepting tool call omits its text argument. An explicit argument
// always wins and stdin is never consulted; the read blocks until EOF.
// Tests replace this to avoid blocking.
var readStdin = func() string {
	b, _ := io.ReadAll(os.Stdin)
	return string(b)
}
