package service

import (
	"sync"
	"time"
)

// Debouncer delays calls per key until the key has been quiet for the
// configured delay. Each Schedule resets the timer and replaces the pending
// call, so at most one call runs per quiet period.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCall
	closed  bool
	running sync.WaitGroup
}

type pendingCall struct {
	timer *time.Timer
	fn    func()
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]*pendingCall),
	}
}

// Schedule arranges for fn to run after the quiet period of key. After Flush
// the call runs immediately.
func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()

	if d.closed {
		d.mu.Unlock()
		fn()

		return
	}

	if prev, ok := d.pending[key]; ok {
		// A timer that already fired finds itself replaced and does nothing.
		prev.timer.Stop()
	}

	call := &pendingCall{fn: fn}
	call.timer = time.AfterFunc(d.delay, func() { d.fire(key, call) })
	d.pending[key] = call

	d.mu.Unlock()
}

// Pending reports whether a call is waiting for key.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.pending[key]

	return ok
}

func (d *Debouncer) fire(key string, call *pendingCall) {
	d.mu.Lock()

	if d.pending[key] != call {
		d.mu.Unlock()
		return
	}

	delete(d.pending, key)
	d.running.Add(1)

	d.mu.Unlock()

	defer d.running.Done()

	call.fn()
}

// Flush runs every pending call now and waits for calls already running.
// Later Schedule calls run synchronously.
func (d *Debouncer) Flush() {
	d.mu.Lock()

	calls := make([]func(), 0, len(d.pending))

	for key, call := range d.pending {
		call.timer.Stop()
		calls = append(calls, call.fn)
		delete(d.pending, key)
	}

	d.closed = true

	d.mu.Unlock()

	for _, fn := range calls {
		fn()
	}

	d.running.Wait()
}
