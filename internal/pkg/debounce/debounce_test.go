package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_Arm(t *testing.T) {
	t.Run("fires after the delay", func(t *testing.T) {
		var timer Timer
		fired := make(chan struct{})

		timer.Arm(10*time.Millisecond, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("timer never fired")
		}
	})

	t.Run("re-arming collapses a burst into one fire", func(t *testing.T) {
		var timer Timer
		var fires int64
		done := make(chan struct{})

		for i := 0; i < 5; i++ {
			timer.Arm(50*time.Millisecond, func() {
				atomic.AddInt64(&fires, 1)
				close(done)
			})
			time.Sleep(5 * time.Millisecond)
		}

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timer never fired")
		}
		// Give any stray earlier fire time to show up.
		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, int64(1), atomic.LoadInt64(&fires))
	})
}

func TestTimer_Stop(t *testing.T) {
	t.Run("stop cancels a pending fire", func(t *testing.T) {
		var timer Timer
		var fires int64

		timer.Arm(30*time.Millisecond, func() { atomic.AddInt64(&fires, 1) })
		timer.Stop()

		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, int64(0), atomic.LoadInt64(&fires))
	})

	t.Run("stop on an idle timer is safe", func(t *testing.T) {
		var timer Timer
		timer.Stop()
	})

	t.Run("arming after stop works", func(t *testing.T) {
		var timer Timer
		fired := make(chan struct{})

		timer.Arm(30*time.Millisecond, func() { t.Error("stopped fire ran") })
		timer.Stop()
		timer.Arm(10*time.Millisecond, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("timer never fired")
		}
	})
}
