package session

import (
	"sync"
	"time"
)

// ElapsedSeconds computes whole seconds elapsed since start, clamped to >= 0.
// An inactive session, or one with no known start time, is always 0.
func ElapsedSeconds(start time.Time, now time.Time, active bool) int {
	if !active || start.IsZero() {
		return 0
	}
	seconds := int(now.Sub(start) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}

// Timer drives a live workout session clock: while active, it recomputes the
// elapsed seconds on a fixed one-second cadence and hands the value to the
// registered callback. Stopping resets the reading to 0.
type Timer struct {
	mu     sync.Mutex
	start  time.Time
	active bool
	stop   chan struct{}
}

func NewTimer() *Timer {
	return &Timer{}
}

// Start begins ticking from the given start time. onTick runs on the timer's
// goroutine, once immediately and then every second until Stop.
func (t *Timer) Start(start time.Time, onTick func(seconds int)) {
	t.mu.Lock()
	if t.active {
		close(t.stop)
	}
	t.start = start
	t.active = true
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		onTick(ElapsedSeconds(start, time.Now(), true))
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				onTick(ElapsedSeconds(start, now, true))
			}
		}
	}()
}

// Elapsed returns the current reading without waiting for a tick.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ElapsedSeconds(t.start, time.Now(), t.active)
}

// Stop halts the cadence and resets the reading to 0. Safe to call when not
// running.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	t.active = false
	close(t.stop)
}
