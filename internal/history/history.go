// Package history keeps a bounded, file-backed list of entered lines.
package history

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// DefaultMax is the number of lines kept when no limit is configured.
const DefaultMax = 1000

type History struct {
	items    []string
	file     string
	maxItems int
	mu       sync.Mutex
}

// New loads file, keeping at most max lines. A missing file starts an empty
// history; an empty path keeps history in memory only.
func New(file string, max int) (*History, error) {
	if max <= 0 {
		max = DefaultMax
	}
	h := &History{
		file:     file,
		maxItems: max,
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

// Add appends item and rewrites the history file.
func (h *History) Add(item string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, item)
	h.trim()
	return h.save()
}

// GetAll returns a copy of the stored lines, oldest first.
func (h *History) GetAll() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string{}, h.items...)
}

// Max returns the configured limit.
func (h *History) Max() int {
	return h.maxItems
}

func (h *History) trim() {
	if len(h.items) > h.maxItems {
		h.items = h.items[len(h.items)-h.maxItems:]
	}
}

func (h *History) load() error {
	if h.file == "" {
		return nil
	}
	file, err := os.Open(h.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.items = append(h.items, scanner.Text())
	}
	h.trim()
	return scanner.Err()
}

func (h *History) save() error {
	if h.file == "" {
		return nil
	}
	file, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, item := range h.items {
		if _, err := writer.WriteString(item + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}
