package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDispatcherKeepsOrder(t *testing.T) {
	d := newDispatcher()
	var order []int
	for i := range 5 {
		d.Dispatch(func() { order = append(order, i) })
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	received := make(chan tea.Msg, 10)
	go d.run(ctx, func(msg tea.Msg) { received <- msg })

	for i := 5; i < 10; i++ {
		d.Dispatch(func() { order = append(order, i) })
	}

	for n := 0; n < 10; n++ {
		select {
		case msg := <-received:
			msg.(dispatchMsg)()
		case <-time.After(time.Second):
			t.Fatalf("expected 10 dispatched functions, got %d", n)
		}
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("expected dispatch order 0..9, got %v", order)
		}
	}
}
