package main

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// dispatchMsg carries a wizard completion onto the bubbletea event loop.
type dispatchMsg func()

// dispatcher forwards completions to the program in the order they were
// dispatched. Dispatch never blocks, so it is safe to call from Update.
type dispatcher struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

func newDispatcher() *dispatcher {
	return &dispatcher{wake: make(chan struct{}, 1)}
}

func (d *dispatcher) Dispatch(f func()) {
	d.mu.Lock()
	d.queue = append(d.queue, f)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.wake:
		}

		d.mu.Lock()
		queue := d.queue
		d.queue = nil
		d.mu.Unlock()

		for _, f := range queue {
			send(dispatchMsg(f))
		}
	}
}
