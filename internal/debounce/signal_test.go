package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalStoresAndExpires(t *testing.T) {
	var fired atomic.Int32
	s := NewSignal(30*time.Millisecond, func() { fired.Add(1) })

	s.Set("abc")
	assert.Equal(t, "abc", s.Value())

	require.Eventually(t, func() bool { return s.Value() == "" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestSignalSecondSetRestartsTimer(t *testing.T) {
	var fired atomic.Int32
	s := NewSignal(60*time.Millisecond, func() { fired.Add(1) })

	s.Set("a")
	time.Sleep(30 * time.Millisecond)
	s.Set("ab")

	// The first timer was cancelled; half its window later nothing
	// has expired yet because the clock restarted on the second set.
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, "ab", s.Value())
	assert.Equal(t, int32(0), fired.Load())

	// Exactly one expiry, timed from the second set
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestSignalCancelSuppressesNotification(t *testing.T) {
	var fired atomic.Int32
	s := NewSignal(20*time.Millisecond, func() { fired.Add(1) })

	s.Set("abc")
	s.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestSignalClearKeepsQuiet(t *testing.T) {
	var fired atomic.Int32
	s := NewSignal(20*time.Millisecond, func() { fired.Add(1) })

	s.Set("abc")
	s.Clear()
	assert.Equal(t, "", s.Value())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestSignalZeroWindowUsesDefault(t *testing.T) {
	s := NewSignal(0, nil)
	assert.Equal(t, DefaultWindow, s.Window())
}
