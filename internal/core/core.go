// Package core holds the I/O plumbing shared by the shell components.
package core

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses reported by the shell process.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Stdio holds the standard streams a component reads from and writes to.
// Tests inject buffers in place of the process streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio bound to os.Stdin, os.Stdout and os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted message to the error stream.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Printf writes a formatted message to the output stream.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Println writes to the output stream followed by a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}
