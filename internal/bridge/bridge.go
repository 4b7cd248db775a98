// Package bridge provides a single-goroutine executor that lets a store adapter
// own its execution context for its whole lifetime.
package bridge

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Do once the executor has been closed.
var ErrClosed = errors.New("paramconf: executor closed")

// Executor runs submitted functions on one private goroutine, one at a time.
// Callers block in Do until their function has returned.
//
// A function running on the executor must not call Do or Close on the same
// executor; it would wait on itself forever.
type Executor struct {
	jobs   chan job
	life   context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

type job struct {
	ctx    context.Context
	fn     func(context.Context) error
	result chan error
}

// New starts an executor goroutine. Call Close to release it.
func New() *Executor {
	life, cancel := context.WithCancel(context.Background())
	e := &Executor{
		jobs:   make(chan job),
		life:   life,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *Executor) run() {
	defer close(e.done)
	for {
		select {
		case <-e.life.Done():
			return
		case j := <-e.jobs:
			j.result <- e.exec(j)
		}
	}
}

// exec runs fn with a context that is cancelled when either the caller's
// context or the executor's lifetime ends.
func (e *Executor) exec(j job) error {
	ctx, cancel := context.WithCancel(j.ctx)
	defer cancel()
	stop := context.AfterFunc(e.life, cancel)
	defer stop()
	return j.fn(ctx)
}

// Do submits fn and blocks until it returns, ctx is done, or the executor closes
// before fn was picked up.
func (e *Executor) Do(ctx context.Context, fn func(context.Context) error) error {
	if e.life.Err() != nil {
		return ErrClosed
	}

	j := job{ctx: ctx, fn: fn, result: make(chan error, 1)}
	select {
	case e.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-e.life.Done():
		return ErrClosed
	}

	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		// fn observes the same cancellation; its result is dropped.
		return ctx.Err()
	}
}

// Close stops the executor, cancelling any in-flight function, and waits for the
// goroutine to exit. Safe to call more than once.
func (e *Executor) Close() {
	e.once.Do(e.cancel)
	<-e.done
}

// Closed reports whether Close has been called.
func (e *Executor) Closed() bool {
	return e.life.Err() != nil
}
