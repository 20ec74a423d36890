// Package shell implements the interactive read-eval loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"minishell/internal/cd"
	"minishell/internal/config"
	"minishell/internal/core"
	"minishell/internal/history"
	"minishell/internal/interrupt"
	"minishell/internal/launcher"
	"minishell/internal/lineio"
	"minishell/internal/prompt"
)

// Launcher runs an external program to completion.
type Launcher interface {
	Launch(argv []string) (launcher.Outcome, error)
}

type Shell struct {
	stdio    *core.Stdio
	coord    *interrupt.Coordinator
	reader   lineio.Reader
	launcher Launcher
	resolver *cd.Resolver
	prompt   prompt.Renderer
	maxArgs  int
	getwd    func() (string, error)
	log      *log.Logger
}

// New wires a shell from cfg. Input comes from a readline terminal when
// stdio.In is a terminal and from a bounded line reader otherwise.
func New(cfg *config.Config, stdio *core.Stdio, coord *interrupt.Coordinator) (*Shell, error) {
	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(stdio.Err, "minishell: ", log.Lmsgprefix)
	}

	// Children inherit the shell's stdin only when it is a real file. Any
	// other reader would be copied into the child and drained.
	childStdio := &core.Stdio{Out: stdio.Out, Err: stdio.Err}
	inFile, isFile := stdio.In.(*os.File)
	if isFile {
		childStdio.In = inFile
	}
	l, err := launcher.New(childStdio, coord, logger)
	if err != nil {
		return nil, err
	}

	var reader lineio.Reader
	if isFile && term.IsTerminal(int(inFile.Fd())) {
		hist, err := history.New(cfg.HistoryFile, cfg.HistorySize)
		if err != nil {
			return nil, fmt.Errorf("error initializing history: %w", err)
		}
		if reader, err = lineio.NewTerminal(hist, cfg.MaxLineBytes); err != nil {
			return nil, err
		}
	} else {
		reader = lineio.NewBounded(stdio.In, stdio.Out, cfg.MaxLineBytes)
	}

	maxArgs := cfg.MaxArgs
	if maxArgs == 0 {
		maxArgs = config.DefaultMaxArgs
	}
	return &Shell{
		stdio:    stdio,
		coord:    coord,
		reader:   reader,
		launcher: l,
		resolver: cd.NewResolver(),
		prompt:   prompt.Renderer{Color: !cfg.PlainPrompt},
		maxArgs:  maxArgs,
		getwd:    os.Getwd,
		log:      logger,
	}, nil
}

// Run loops until exit or a fatal input error and returns the exit status.
func (s *Shell) Run() int {
	for {
		cwd, err := s.getwd()
		if err != nil {
			s.stdio.Errorf("Error: %v\n", &CwdError{Err: err})
			return core.ExitFailure
		}

		line, err := s.reader.ReadLine(s.prompt.Render(cwd))
		if errors.Is(err, lineio.ErrInterrupted) {
			s.coord.Raise()
		}
		if err != nil {
			if s.coord.TestAndClear() {
				s.stdio.Println()
				continue
			}
			s.stdio.Errorf("Error: %v\n", &ReadError{Err: err})
			return core.ExitFailure
		}

		if s.coord.TestAndClear() {
			s.log.Printf("discarding line read while interrupted: %q", line)
			continue
		}

		if err := s.Execute(line); err != nil {
			if errors.Is(err, errExit) {
				return core.ExitSuccess
			}
			s.stdio.Errorf("Error: %v\n", err)
		}
	}
}

// Execute runs one command line. It returns errExit for the exit builtin.
func (s *Shell) Execute(line string) error {
	args, err := Fields(line, s.maxArgs)
	if err != nil || len(args) == 0 {
		return err
	}
	if ok, err := s.executeBuiltin(args, line); ok {
		return err
	}
	return s.runExternal(args)
}

func (s *Shell) runExternal(args []string) error {
	out, err := s.launcher.Launch(args)
	if err != nil {
		return err
	}
	s.log.Printf("%s: exit status %d", args[0], out.ExitCode)
	return nil
}

// Interrupt wakes a blocked read. It is meant to be called on SIGINT.
func (s *Shell) Interrupt() {
	s.reader.Interrupt()
}

// Close releases the input reader.
func (s *Shell) Close() error {
	return s.reader.Close()
}
