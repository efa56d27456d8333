package loader

import "sync"

// Loader tracks how many requests are currently in flight, process-wide.
// The indicator is visible whenever the count is above zero. Stop never
// drives the count below zero, so an unpaired Stop is harmless.
type Loader struct {
	mu        sync.Mutex
	active    int
	listeners []func(loading bool)
}

func New() *Loader {
	return &Loader{}
}

// Start marks one request as in flight.
func (l *Loader) Start() {
	l.mu.Lock()
	l.active++
	fns, loading := l.snapshot()
	l.mu.Unlock()

	notify(fns, loading)
}

// Stop marks one request as finished. Callers pair every Start with
// exactly one Stop, including on error paths.
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.active > 0 {
		l.active--
	}
	fns, loading := l.snapshot()
	l.mu.Unlock()

	notify(fns, loading)
}

// Loading reports whether any request is outstanding.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active > 0
}

// Active returns the raw in-flight count, mainly for the metrics gauge.
func (l *Loader) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Subscribe registers fn to be called with the visible state after every
// change. fn is invoked outside the loader's lock.
func (l *Loader) Subscribe(fn func(loading bool)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	l.mu.Unlock()
}

func (l *Loader) snapshot() ([]func(bool), bool) {
	fns := make([]func(bool), len(l.listeners))
	copy(fns, l.listeners)
	return fns, l.active > 0
}

func notify(fns []func(bool), loading bool) {
	for _, fn := range fns {
		fn(loading)
	}
}
