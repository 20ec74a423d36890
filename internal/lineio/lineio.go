// Package lineio reads command lines for the interactive loop.
package lineio

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// DefaultMax is the line capacity in bytes, newline included.
const DefaultMax = 4096

var (
	// ErrInterrupted is returned when an interrupt aborts a blocked read.
	ErrInterrupted = errors.New("read interrupted")
	ErrClosed      = errors.New("reader closed")
)

// Reader reads one command line per call.
type Reader interface {
	// ReadLine shows prompt and returns the next line without its newline.
	ReadLine(prompt string) (string, error)
	// Interrupt wakes a blocked ReadLine. It must not block.
	Interrupt()
	Close() error
}

type result struct {
	line string
	err  error
}

// Bounded reads lines from a plain stream. Lines longer than the capacity are
// truncated and the rest of the line is discarded.
type Bounded struct {
	r    *bufio.Reader
	out  io.Writer
	max  int
	req  chan struct{}
	res  chan result
	wake chan struct{}
	done chan struct{}
	once sync.Once
	// pending is set while a requested line has not been returned yet.
	pending bool
}

// NewBounded reads from in and writes prompts to out. max is the capacity in
// bytes including the newline; values below 2 select DefaultMax.
func NewBounded(in io.Reader, out io.Writer, max int) *Bounded {
	if max < 2 {
		max = DefaultMax
	}
	b := &Bounded{
		r:    bufio.NewReader(in),
		out:  out,
		max:  max,
		req:  make(chan struct{}, 1),
		res:  make(chan result, 1),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go b.loop()
	return b
}

// loop reads only when asked so input meant for a launched program is left
// alone while the shell is not prompting.
func (b *Bounded) loop() {
	for {
		select {
		case <-b.req:
		case <-b.done:
			return
		}
		line, err := b.readLine()
		b.res <- result{line: line, err: err}
	}
}

func (b *Bounded) readLine() (string, error) {
	var buf []byte
	got := false
	for {
		chunk, err := b.r.ReadSlice('\n')
		if len(chunk) > 0 {
			got = true
		}
		if err == nil {
			chunk = chunk[:len(chunk)-1]
		}
		if room := b.max - 1 - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}

		switch {
		case err == nil:
			return string(buf), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && got:
			return string(buf), nil
		default:
			return "", err
		}
	}
}

func (b *Bounded) ReadLine(prompt string) (string, error) {
	select {
	case <-b.wake:
	default:
	}
	select {
	case <-b.done:
		return "", ErrClosed
	default:
	}

	if _, err := io.WriteString(b.out, prompt); err != nil {
		return "", err
	}
	if !b.pending {
		b.req <- struct{}{}
		b.pending = true
	}

	select {
	case r := <-b.res:
		b.pending = false
		return r.line, r.err
	case <-b.wake:
		return "", ErrInterrupted
	case <-b.done:
		return "", ErrClosed
	}
}

func (b *Bounded) Interrupt() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Close stops the reader. It does not close the underlying stream.
func (b *Bounded) Close() error {
	b.once.Do(func() { close(b.done) })
	return nil
}

func truncate(line string, max int) string {
	if max < 2 {
		max = DefaultMax
	}
	if len(line) > max-1 {
		return line[:max-1]
	}
	return line
}
