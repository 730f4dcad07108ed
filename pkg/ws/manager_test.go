package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectionTouchAdvancesLastSeen(t *testing.T) {
	c := &Connection{UserID: "u1"}
	assert.True(t, c.LastSeen().IsZero())

	c.Touch()
	first := c.LastSeen()
	assert.False(t, first.IsZero())

	time.Sleep(time.Millisecond)
	c.Touch()
	assert.True(t, c.LastSeen().After(first))
}

// The pong handler touches the connection from its read goroutine while the
// heartbeat loop reads liveness concurrently; both must go through the
// atomic accessors.
func TestConnectionLastSeenConcurrent(t *testing.T) {
	c := &Connection{UserID: "u1"}
	c.Touch()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				c.Touch()
			}
		}
	}()

	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		assert.False(t, time.Since(c.LastSeen()) > time.Minute)
	}

	close(stop)
	wg.Wait()
}
