// Package interrupt records whether an interrupt arrived since the last
// checkpoint. The flag is the only state shared between the signal receiver
// and the rest of the shell.
package interrupt

import "sync/atomic"

// Coordinator is a single interrupt flag. Several interrupts before the next
// checkpoint collapse into one observed event. The zero value is ready to use.
type Coordinator struct {
	flag atomic.Bool
}

// Raise marks an interrupt as pending. It is safe to call from the signal
// receiving goroutine at any time.
func (c *Coordinator) Raise() {
	c.flag.Store(true)
}

// TestAndClear reports whether an interrupt was pending and clears the flag
// in the same atomic step, so a Raise racing with it is seen either now or at
// the next checkpoint.
func (c *Coordinator) TestAndClear() bool {
	return c.flag.Swap(false)
}

// Peek reports whether an interrupt is pending without clearing it.
func (c *Coordinator) Peek() bool {
	return c.flag.Load()
}
