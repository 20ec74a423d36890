package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrArgOverflow is returned by Fields for lines with too many tokens.
	ErrArgOverflow = errors.New("argument list too long")

	errExit = errors.New("exit")
)

// CwdError reports that the working directory could not be read. It ends
// the loop.
type CwdError struct {
	Err error
}

func (e *CwdError) Error() string {
	return fmt.Sprintf("cannot get current working directory: %v", e.Err)
}

func (e *CwdError) Unwrap() error { return e.Err }

// ReadError reports a failed read of standard input that no interrupt
// explains. It ends the loop.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read from stdin: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
