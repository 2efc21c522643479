package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces successive polls at least gap apart, so a burst of pokes
// cannot hammer the tmux server.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: max(gap, 0)}
}

// wait blocks until the next poll slot and claims it. It returns false if
// ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.gap <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	now := time.Now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.gap)
	t.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
