package lineio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"minishell/internal/history"
)

// Terminal reads lines from an interactive terminal with line editing.
// Ctrl-C arrives as a key press in raw mode and is reported as
// ErrInterrupted.
type Terminal struct {
	rl   *readline.Instance
	hist *history.History
	max  int
}

// NewTerminal opens readline on the process terminal and preloads hist.
func NewTerminal(hist *history.History, max int) (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:           hist.Max(),
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}
	for _, item := range hist.GetAll() {
		_ = rl.SaveHistory(item)
	}
	return &Terminal{rl: rl, hist: hist, max: max}, nil
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}

	line = truncate(line, t.max)
	if strings.TrimSpace(line) != "" {
		_ = t.hist.Add(line)
		_ = t.rl.SaveHistory(line)
	}
	return line, nil
}

// Interrupt is a no-op: readline reports Ctrl-C itself.
func (t *Terminal) Interrupt() {}

func (t *Terminal) Close() error {
	return t.rl.Close()
}
