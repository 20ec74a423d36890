package interrupt

import (
	"os"
	"os/signal"
	"sync"
)

// Watcher forwards os.Interrupt deliveries into a Coordinator.
type Watcher struct {
	coord *Coordinator
	hooks []func()
	sigs  chan os.Signal
	done  chan struct{}
	once  sync.Once
}

// Watch subscribes to os.Interrupt immediately. Each delivery raises c and
// then calls every hook; hooks must not block.
func Watch(c *Coordinator, hooks ...func()) *Watcher {
	w := &Watcher{
		coord: c,
		hooks: hooks,
		sigs:  make(chan os.Signal, 1),
		done:  make(chan struct{}),
	}
	signal.Notify(w.sigs, os.Interrupt)
	return w
}

// Run handles deliveries until Stop is called.
func (w *Watcher) Run() error {
	for {
		select {
		case <-w.sigs:
			w.coord.Raise()
			for _, hook := range w.hooks {
				hook()
			}
		case <-w.done:
			return nil
		}
	}
}

// Stop unsubscribes from os.Interrupt and makes Run return.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		signal.Stop(w.sigs)
		close(w.done)
	})
}
