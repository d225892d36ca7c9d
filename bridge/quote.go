package bridge

import "strings"

// quoteToken quotes a single command token for the remote POSIX shell.
// Tokens containing a space are single-quoted with the standard `'\''` escape
// for embedded single quotes; everything else passes through verbatim, so the
// termux tools receive exactly the bytes the caller supplied.
func quoteToken(s string) string {
	if !strings.Contains(s, " ") {
		return s
	}
	return singleQuote(s)
}

// singleQuote always wraps s in single quotes, escaping embedded ones.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// commandLine joins command tokens into one remote shell line. When input is
// non-empty it is fed to the command's stdin through an echo pipe, mirroring
// how the termux text tools consume piped payloads.
func commandLine(tokens []string, input string) string {
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		quoted = append(quoted, quoteToken(t))
	}
	line := strings.Join(quoted, " ")
	if input != "" {
		line = "echo " + singleQuote(input) + " | " + line
	}
	return line
}
