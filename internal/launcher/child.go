package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"golang.org/x/sys/unix"

	"minishell/internal/core"
)

// childMarker is the first argument of a trampoline process.
const childMarker = "__minishell_launch__"

// ExecError reports that Program could not replace the child image.
type ExecError struct {
	Program string
	Err     error
}

func (e *ExecError) Error() string {
	cause := e.Err
	var ee *exec.Error
	if errors.As(cause, &ee) {
		cause = ee.Err
	}
	return fmt.Sprintf("exec failed for %s: %v", e.Program, cause)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Init runs the child side of Launch when this process is a trampoline and
// never returns in that case. Call it first thing in main and in TestMain of
// packages that launch programs.
func Init() {
	if len(os.Args) < 3 || os.Args[1] != childMarker {
		return
	}
	os.Exit(runChild(os.Args[2:], os.Stderr))
}

// runChild ignores SIGINT, which survives exec as SIG_IGN, and replaces the
// process image with argv. It returns only on failure.
func runChild(argv []string, stderr io.Writer) int {
	signal.Ignore(os.Interrupt)
	err := execve(argv)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return core.ExitFailure
}

func execve(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return &ExecError{Program: argv[0], Err: err}
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return &ExecError{Program: argv[0], Err: err}
	}
	return nil
}
