package avatar

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Pool runs CPU-bound effect work on a fixed number of workers so command
// handlers never block the gateway event handling. Tasks are picked up in
// submission order; there is no priority and no cancellation once a worker
// has started a task.
//
// Workers are reused across unrelated requests, so submitted functions must
// be pure with respect to shared state.
type Pool struct {
	tasks chan task
	wg    sync.WaitGroup
	log   zerolog.Logger
	once  sync.Once
}

type task struct {
	fn   func() error
	done chan error
}

// NewPool starts a pool with the given number of workers (min 1).
func NewPool(workers int, log zerolog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		tasks: make(chan task),
		log:   log,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Do submits fn and blocks the calling goroutine until a worker has run it,
// returning whatever fn returned. A panic inside fn is recovered on the
// worker and surfaced as an error, so one bad image never takes the bot
// down. If ctx ends before a worker picks the task up, Do returns early;
// a task already running is not interrupted.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	t := task{fn: fn, done: make(chan error, 1)}

	select {
	case p.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.tasks)
		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		t.done <- p.run(t.fn)
	}
}

func (p *Pool) run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("Effect worker recovered from panic")
			err = fmt.Errorf("effect worker panic: %v", r)
		}
	}()
	return fn()
}
