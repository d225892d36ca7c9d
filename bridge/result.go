package bridge

// Result is the outcome of one remote command: captured stdout and stderr
// text plus the remote process exit status. Transport failures are folded in
// as a non-zero exit with the failure reason in Stderr.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OK reports whether the remote command exited zero.
func (r Result) OK() bool { return r.ExitCode == 0 }
