// Package launcher runs external programs in the foreground and reconciles
// their termination with the interrupt flag.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"

	"github.com/kballard/go-shellquote"

	"minishell/internal/core"
	"minishell/internal/interrupt"
)

// ForkError reports that no process could be created for Argv.
type ForkError struct {
	Argv []string
	Err  error
}

func (e *ForkError) Error() string {
	return fmt.Sprintf("fork failed for %s: %v", shellquote.Join(e.Argv...), e.Err)
}

func (e *ForkError) Unwrap() error { return e.Err }

// Outcome describes how a launched program terminated.
type Outcome struct {
	ExitCode int
	Signaled bool
	Stopped  bool
	Signal   syscall.Signal
	// Interrupted is set when the launch ended with an interrupt pending or
	// the program was killed or stopped by a signal.
	Interrupted bool
}

// Launcher starts programs through the trampoline handled by Init.
type Launcher struct {
	stdio *core.Stdio
	coord *interrupt.Coordinator
	self  string
	log   *log.Logger
}

// New returns a Launcher whose children inherit stdio. A nil logger
// discards trace output.
func New(stdio *core.Stdio, coord *interrupt.Coordinator, logger *log.Logger) (*Launcher, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate own executable: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Launcher{
		stdio: stdio,
		coord: coord,
		self:  self,
		log:   logger,
	}, nil
}

// Launch runs argv[0] with argv as its argument list and blocks until it
// terminates. argv[0] is searched in PATH by the child. A failure to replace
// the child image is reported by the child itself on stderr and shows up here
// as a failing exit code.
func (l *Launcher) Launch(argv []string) (Outcome, error) {
	if len(argv) == 0 {
		return Outcome{}, errors.New("launch: empty argument list")
	}

	cmd := exec.Command(l.self, append([]string{childMarker}, argv...)...)
	cmd.Stdin = l.stdio.In
	cmd.Stdout = l.stdio.Out
	cmd.Stderr = l.stdio.Err

	if err := cmd.Start(); err != nil {
		return Outcome{}, &ForkError{Argv: argv, Err: err}
	}
	l.log.Printf("launch: pid %d: %s", cmd.Process.Pid, shellquote.Join(argv...))

	waitErr := cmd.Wait()
	out := outcomeOf(cmd.ProcessState)
	l.reconcile(&out)
	l.log.Printf("launch: pid %d: exit=%d signaled=%t stopped=%t interrupted=%t",
		cmd.Process.Pid, out.ExitCode, out.Signaled, out.Stopped, out.Interrupted)

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return out, fmt.Errorf("wait for %s: %w", shellquote.Join(argv...), waitErr)
	}
	return out, nil
}

// reconcile is the post-wait interrupt checkpoint. A pending interrupt and a
// signal termination each call for a newline; only one is printed. The flag
// is left raised when the child died or stopped by a signal.
func (l *Launcher) reconcile(out *Outcome) {
	pending := l.coord.TestAndClear()
	bySignal := out.Signaled || out.Stopped
	if pending || bySignal {
		out.Interrupted = true
		fmt.Fprintln(l.stdio.Out)
	}
	if bySignal {
		l.coord.Raise()
	}
}

func outcomeOf(ps *os.ProcessState) Outcome {
	if ps == nil {
		return Outcome{ExitCode: -1}
	}
	out := Outcome{ExitCode: ps.ExitCode()}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		switch {
		case ws.Signaled():
			out.Signaled = true
			out.Signal = ws.Signal()
		case ws.Stopped():
			out.Stopped = true
			out.Signal = ws.StopSignal()
		}
	}
	return out
}
