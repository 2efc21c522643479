package backend

import (
	"context"
	"sync"
	"time"
)

const minPollGap = 50 * time.Millisecond

// Source reports the current layout signature of the watched window.
type Source interface {
	LayoutSignature() (string, error)
}

// Event carries a changed signature or a poll error. Errors are only
// published when they differ from the previous one.
type Event struct {
	Signature string
	Err       error
}

// Watcher polls a Source at a fixed interval and publishes changes. It never
// reads or mutates the layout itself; consumers refresh on their own loop.
type Watcher struct {
	src      Source
	interval time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	poke   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	last    string
	lastErr string
}

// NewWatcher starts polling src every interval. baseline is the signature the
// caller already knows about, so it is not reported as a change.
func NewWatcher(src Source, interval time.Duration, baseline string) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		src:      src,
		interval: interval,
		throttle: newThrottle(minPollGap),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		poke:     make(chan struct{}, 1),
		last:     baseline,
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of watcher events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Sync records a signature the consumer has already applied, typically right
// after it refreshed following its own command.
func (w *Watcher) Sync(signature string) {
	w.mu.Lock()
	w.last = signature
	w.mu.Unlock()
}

// Poke asks for a poll ahead of the next tick. Pokes coalesce.
func (w *Watcher) Poke() {
	select {
	case w.poke <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		case <-w.poke:
		}
		if !w.check() {
			return
		}
	}
}

func (w *Watcher) check() bool {
	if !w.throttle.wait(w.ctx) {
		return false
	}
	sig, err := w.src.LayoutSignature()
	evt, changed := w.observe(sig, err)
	if !changed {
		return true
	}
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) observe(sig string, err error) (Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		msg := err.Error()
		if msg == w.lastErr {
			return Event{}, false
		}
		w.lastErr = msg
		return Event{Err: err}, true
	}
	w.lastErr = ""
	if sig == w.last {
		return Event{}, false
	}
	w.last = sig
	return Event{Signature: sig}, true
}
