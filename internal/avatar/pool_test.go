package avatar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestPoolReturnsResult(t *testing.T) {
	p := NewPool(2, zerolog.Nop())
	defer p.Close()

	var sum int
	err := p.Do(context.Background(), func() error {
		sum = 2 + 3
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if sum != 5 {
		t.Fatalf("expected 5, got %d", sum)
	}
}

func TestPoolPropagatesError(t *testing.T) {
	p := NewPool(1, zerolog.Nop())
	defer p.Close()

	want := errors.New("boom")
	err := p.Do(context.Background(), func() error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPoolRecoversPanic(t *testing.T) {
	p := NewPool(1, zerolog.Nop())
	defer p.Close()

	err := p.Do(context.Background(), func() error { panic("bad image") })
	if err == nil || !strings.Contains(err.Error(), "panic") {
		t.Fatalf("expected recovered panic error, got %v", err)
	}

	// The worker survives and keeps serving tasks.
	if err := p.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("pool dead after panic: %v", err)
	}
}

func TestPoolDoesNotBlockConcurrentCallers(t *testing.T) {
	p := NewPool(2, zerolog.Nop())
	defer p.Close()

	gate := make(chan struct{})
	firstRunning := make(chan struct{})
	firstDone := make(chan error, 1)
	secondDone := make(chan error, 1)

	go func() {
		firstDone <- p.Do(context.Background(), func() error {
			close(firstRunning)
			<-gate
			return nil
		})
	}()

	<-firstRunning

	// While the first task is parked on a worker, a second caller must
	// still get through.
	go func() {
		secondDone <- p.Do(context.Background(), func() error { return nil })
	}()

	select {
	case err := <-secondDone:
		if err != nil {
			t.Fatalf("second task: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second task blocked behind the first")
	}

	close(gate)
	if err := <-firstDone; err != nil {
		t.Fatalf("first task: %v", err)
	}
}

func TestPoolHonorsContextBeforePickup(t *testing.T) {
	p := NewPool(1, zerolog.Nop())
	defer p.Close()

	gate := make(chan struct{})
	running := make(chan struct{})
	busy := make(chan error, 1)
	go func() {
		busy <- p.Do(context.Background(), func() error {
			close(running)
			<-gate
			return nil
		})
	}()
	<-running

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Do(ctx, func() error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	close(gate)
	if err := <-busy; err != nil {
		t.Fatalf("busy task: %v", err)
	}
}
