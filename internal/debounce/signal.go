// Package debounce provides a timer-backed transient value holder.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet period after which a signal self-clears.
// Overridable at package level, not per instance.
var DefaultWindow = 500 * time.Millisecond

// Signal stores a transient string value that reverts to empty after a
// fixed quiet period. Set replaces the value and restarts the timer;
// there is at most one pending timer per signal. A sequence counter
// invalidates callbacks that raced with a later Set or Cancel.
type Signal struct {
	window   time.Duration
	onExpire func()

	mu    sync.Mutex
	value string
	timer *time.Timer
	seq   uint64
}

// NewSignal creates a signal with the given window. A zero window uses
// DefaultWindow. onExpire may be nil; when set it fires once per expiry
// after the value has been cleared.
func NewSignal(window time.Duration, onExpire func()) *Signal {
	if window == 0 {
		window = DefaultWindow
	}
	return &Signal{window: window, onExpire: onExpire}
}

// Set stores value and (re)starts the expiry timer
func (s *Signal) Set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq
	s.value = value

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, func() {
		s.expire(seq)
	})
}

func (s *Signal) expire(seq uint64) {
	s.mu.Lock()
	// A later Set or Cancel owns the timer now; this callback lost the race.
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.value = ""
	s.timer = nil
	notify := s.onExpire
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Value returns the current transient value ("" after expiry)
func (s *Signal) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Clear resets the value immediately without firing a notification.
// Used when a non-character key invalidates a type-ahead buffer.
func (s *Signal) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.value = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Cancel stops any pending timer without firing a notification.
// Must be called at teardown so a late callback cannot touch a
// destroyed owner.
func (s *Signal) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Window returns the signal's quiet period
func (s *Signal) Window() time.Duration {
	return s.window
}
