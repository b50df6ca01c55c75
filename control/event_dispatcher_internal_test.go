package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventDispatcher_RunsHandlersInOrder(t *testing.T) {
	d := newEventDispatcher()
	go d.run()
	defer d.stop()

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		d.enqueue(func() {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handlers never ran")
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestEventDispatcher_StopEndsRunLoop(t *testing.T) {
	d := newEventDispatcher()
	loopExited := make(chan struct{})
	go func() {
		d.run()
		close(loopExited)
	}()

	d.stop()

	select {
	case <-loopExited:
	case <-time.After(time.Second):
		t.Fatal("run did not exit after stop")
	}
}
